package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodbridge/config"
	"foodbridge/database"
	listingRepoPkg "foodbridge/database/repository/listing"
	notificationRepoPkg "foodbridge/database/repository/notification"
	requestRepoPkg "foodbridge/database/repository/request"
	userRepoPkg "foodbridge/database/repository/user"
	"foodbridge/graph"
	"foodbridge/handlers"
	"foodbridge/middleware"
	"foodbridge/routes"
	"foodbridge/services/admin"
	"foodbridge/services/listing"
	"foodbridge/services/matching"
	"foodbridge/services/notification"
	"foodbridge/services/request"
	"foodbridge/services/user"
	"foodbridge/utils"
	"foodbridge/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	rootCtx := context.Background()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	graphStore, err := graph.NewNeo4jStore(
		config.AppConfig.Neo4jURI,
		config.AppConfig.Neo4jUser,
		config.AppConfig.Neo4jPassword,
		config.AppConfig.Neo4jDatabase,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Neo4j: %v", err)
	}
	if err := graphStore.Verify(rootCtx); err != nil {
		logger.Sugar().Fatalf("main: Neo4j connectivity check failed: %v", err)
	}

	authCache := utils.NewRedisClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisAuthDB,
	)

	reasoner, err := matching.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize reasoning client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	listingRepo := listingRepoPkg.NewMongoListingRepo(db)
	requestRepo := requestRepoPkg.NewMongoRequestRepo(db)
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo(db)

	// services.
	proximity := &matching.ProximityResolver{Graph: graphStore}

	userService := &user.DefaultUserService{Repo: userRepo}

	matchingService := &matching.DefaultMatchingService{
		Listings:  listingRepo,
		Proximity: proximity,
		Locator:   &matching.RecipientLocator{Users: userRepo},
		Reasoner:  reasoner,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:      notificationRepo,
		Proximity: proximity,
		Users:     userRepo,
	}

	notifier := worker.NewNotifier()
	listingService := &listing.DefaultListingService{
		Repo:      listingRepo,
		Announcer: notifier.AnnounceListing,
	}

	requestService := &request.DefaultRequestService{
		Repo:          requestRepo,
		Listings:      listingRepo,
		Notifications: notificationRepo,
	}

	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Listings: listingRepo,
		Requests: requestRepo,
	}

	// Background fan-out worker.
	worker.InitNotificationWorker(notificationService, listingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthHandler:         handlers.NewAuthHandler(userService),
		UserHandler:         handlers.NewUserHandler(userService),
		ListingHandler:      handlers.NewListingHandler(listingService),
		RequestHandler:      handlers.NewRequestHandler(requestService),
		NotificationHandler: handlers.NewNotificationHandler(notificationService),
		MatchingHandler:     handlers.NewMatchingHandler(matchingService),
		CityHandler:         handlers.NewCityHandler(graphStore),
		AdminHandler:        handlers.NewAdminHandler(adminService),

		UserRepo:  userRepo,
		AuthCache: authCache,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := notifier.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close queue client: %v", err)
	}
	if err := reasoner.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reasoning client: %v", err)
	}
	if err := graphStore.Close(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close Neo4j driver: %v", err)
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
