// Package worker runs the background fan-out for newly posted listings.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"foodbridge/config"
	listingRepo "foodbridge/database/repository/listing"
	"foodbridge/services/notification"
	"foodbridge/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeNewListing = "listing:announce"

// NewListingPayload is the task payload for a new-listing announcement.
type NewListingPayload struct {
	ListingID string `json:"listing_id"`
}

// Notifier enqueues announcement tasks onto the Redis-backed queue.
type Notifier struct {
	client *asynq.Client
}

// NewNotifier creates a Notifier against the configured queue database.
func NewNotifier() *Notifier {
	return &Notifier{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// AnnounceListing enqueues a fan-out task for the listing. Failures are
// logged; announcement is best effort and never blocks the create path.
func (n *Notifier) AnnounceListing(listingID string) {
	logger := utils.GetLogger()

	payload, err := json.Marshal(NewListingPayload{ListingID: listingID})
	if err != nil {
		logger.Error("Failed to marshal announcement payload", zap.String("listingID", listingID), zap.Error(err))
		return
	}

	task := asynq.NewTask(TypeNewListing, payload)
	if _, err := n.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		logger.Error("Failed to enqueue announcement", zap.String("listingID", listingID), zap.Error(err))
		return
	}
	logger.Info("Announcement enqueued", zap.String("listingID", listingID))
}

// Close releases the underlying queue connection.
func (n *Notifier) Close() error {
	return n.client.Close()
}

// InitNotificationWorker runs the async worker in the background.
func InitNotificationWorker(notifSvc notification.NotificationService, listings listingRepo.ListingRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNewListing, handleNewListingTask(notifSvc, listings))

	go func() {
		logger.Info("Starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Notification worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Notification worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNewListingTask(notifSvc notification.NotificationService, listings listingRepo.ListingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p NewListingPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid announcement payload", zap.Error(err))
			return err
		}

		l, err := listings.GetByID(p.ListingID)
		if err != nil {
			// The listing may have been deleted before the task ran.
			logger.Warn("Announced listing no longer available", zap.String("listingID", p.ListingID), zap.Error(err))
			return nil
		}

		if err := notifSvc.FanOutNewListing(ctx, l); err != nil {
			logger.Error("Fan-out failed", zap.String("listingID", p.ListingID), zap.Error(err))
			return err
		}
		return nil
	}
}
