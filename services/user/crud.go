package user

import (
	"fmt"
	"time"

	"foodbridge/models"
	"foodbridge/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves an account by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

// GetUserByEmail retrieves an account by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return usr, nil
}

// UpdateUser updates non-empty user fields using a partial update.
func (s *DefaultUserService) UpdateUser(u models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if u.ID == "" {
		return nil, fmt.Errorf("user ID is required for update")
	}

	updateFields := map[string]any{
		"updated_at": time.Now(),
	}
	if u.Name != "" {
		updateFields["name"] = u.Name
	}
	if u.Email != "" {
		updateFields["email"] = u.Email
	}
	if u.Location != "" {
		updateFields["location"] = u.Location
	}
	if u.PasswordHash != "" {
		// Callers pass the plain password in PasswordHash; re-hash it here.
		hash, err := bcrypt.GenerateFromPassword([]byte(u.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updateFields["password_hash"] = string(hash)
	}

	if len(updateFields) == 1 {
		logger.Warn("No updatable fields provided", zap.String("userID", u.ID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(u.ID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.Repo.GetByID(u.ID)
}
