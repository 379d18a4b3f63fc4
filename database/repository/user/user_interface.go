package userRepo

import (
	"servlink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves a user whose tokenHash matches the provided hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// UpdateFields patches selected fields on a user document.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
