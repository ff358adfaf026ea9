package userRepo

import (
	"foodbridge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil if absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateWithDocument applies a partial update document to a user record.
	UpdateWithDocument(id string, update bson.M) error
	// GetAllWithProjection retrieves all users with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.User, error)
	// FindByLocationsAndRole retrieves users registered in any of the given
	// cities with the given role, projecting only id, name and location.
	FindByLocationsAndRole(cities []string, role string) ([]models.User, error)
	// Count returns the total number of user records.
	Count() (int64, error)
}
