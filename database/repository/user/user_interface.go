package userRepo

import "mindcare/models"

// UserRepository defines data access for platform users.
type UserRepository interface {
	Create(user *models.User) error
	// GetByID returns a user by id, or (nil, nil) when missing.
	GetByID(id string) (*models.User, error)
	// GetByEmail returns a user by email, or (nil, nil) when missing.
	GetByEmail(email string) (*models.User, error)
	// SetTokenHash stores the sha256 hash of the user's current auth token.
	// An empty hash revokes the session.
	SetTokenHash(id, hash string) error
}
