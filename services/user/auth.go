package user

import (
	"fmt"
	"time"

	userRepo "foodbridge/database/repository/user"
	"foodbridge/models"
	"foodbridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the lifetime of issued access tokens.
const tokenDuration = time.Hour

// DefaultUserService implements UserService on top of the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account. The email must be unused and the role must
// be one of the accepted account roles.
func (s *DefaultUserService) Register(u models.User, password string) (*models.User, error) {
	logger := utils.GetLogger()

	if !models.ValidRole(u.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u.ID = uuid.NewString()
	u.PasswordHash = string(hash)

	if err := s.Repo.Create(&u); err != nil {
		logger.Error("Failed to create user", zap.String("email", u.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", zap.String("userID", u.ID), zap.String("role", u.Role))
	return &u, nil
}

// Authenticate verifies the credentials and issues a signed token carrying
// the account's email and role.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.Email, usr.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{AccessToken: token, TokenType: "bearer", Role: usr.Role}, nil
}
