package catalog

import (
	serviceRepo "servlink/database/repository/service"
	"servlink/models"
)

// ServiceInput carries the editable fields of a service listing.
type ServiceInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

// CatalogService manages the services a provider offers. All mutating
// operations enforce ownership server-side.
type CatalogService interface {
	CreateService(providerID string, input ServiceInput) (*models.Service, error)
	UpdateService(providerID, serviceID string, input ServiceInput) (*models.Service, error)
	DeleteService(providerID, serviceID string) error
	ListByProvider(providerID string) ([]models.Service, error)
	GetService(serviceID string) (*models.Service, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
