package user

import (
	"errors"

	"foodbridge/models"
)

// Service-level failures surfaced to handlers.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
)

// AuthResult is returned on successful login.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

// UserService defines account operations.
type UserService interface {
	// Register creates a new account with a hashed password.
	Register(u models.User, password string) (*models.User, error)
	// Authenticate verifies credentials and issues a JWT.
	Authenticate(email, password string) (*AuthResult, error)
	// GetUserByID retrieves an account by id.
	GetUserByID(id string) (*models.User, error)
	// GetUserByEmail retrieves an account by email, or nil if absent.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateUser applies a partial update to an account.
	UpdateUser(u models.User) (*models.User, error)
}
