package requestRepo

import (
	"context"
	"fmt"
	"time"

	"foodbridge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo(db *mongo.Database) RequestRepository {
	repo := &MongoRequestRepo{coll: db.Collection("requests")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "listing_id", Value: 1}}},
		{Keys: bson.D{{Key: "requester_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) find(filter bson.M) ([]models.Request, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	for cursor.Next(ctx) {
		var req models.Request
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Create inserts a new request document.
func (r *MongoRequestRepo) Create(req *models.Request) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	req.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID.
func (r *MongoRequestRepo) GetByID(id string) (*models.Request, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.Request
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetByRequester retrieves all requests created by the given user.
func (r *MongoRequestRepo) GetByRequester(requesterID string) ([]models.Request, error) {
	return r.find(bson.M{"requester_id": requesterID})
}

// GetByListingIDs retrieves all requests against the given listings.
func (r *MongoRequestRepo) GetByListingIDs(listingIDs []string) ([]models.Request, error) {
	return r.find(bson.M{"listing_id": bson.M{"$in": listingIDs}})
}

// GetAll retrieves all request documents.
func (r *MongoRequestRepo) GetAll() ([]models.Request, error) {
	return r.find(bson.M{})
}

// UpdateWithDocument applies a partial update to an existing request document.
func (r *MongoRequestRepo) UpdateWithDocument(id string, update map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update request with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of request documents.
func (r *MongoRequestRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
