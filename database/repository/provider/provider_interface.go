package providerRepo

import "servlink/models"

// ProviderRepository defines methods for provider profile data access.
type ProviderRepository interface {
	// Create inserts a new provider profile.
	Create(profile *models.ProviderProfile) error
	// GetByID retrieves a profile by its unique ID, or nil when absent.
	GetByID(id string) (*models.ProviderProfile, error)
	// GetAll retrieves all provider profiles.
	GetAll() ([]models.ProviderProfile, error)
	// GetByCategory retrieves profiles whose category equals the given value.
	// Matching is exact and case-sensitive.
	GetByCategory(category string) ([]models.ProviderProfile, error)
	// Update overwrites an existing profile.
	Update(profile *models.ProviderProfile) error
	// Delete removes a profile by its ID.
	Delete(id string) error
}
