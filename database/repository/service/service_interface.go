package serviceRepo

import "servlink/models"

// ServiceRepository defines methods for service listing data access.
type ServiceRepository interface {
	// Create inserts a new service listing.
	Create(service *models.Service) error
	// GetByID retrieves a service by its unique ID, or nil when absent.
	GetByID(id string) (*models.Service, error)
	// GetByProvider retrieves all services owned by a provider, newest first.
	GetByProvider(providerID string) ([]models.Service, error)
	// Update overwrites an existing service listing.
	Update(service *models.Service) error
	// Delete removes a service listing by its ID.
	Delete(id string) error
}
