package catalog

import (
	"fmt"
	"strings"
	"time"

	"servlink/models"
	"servlink/utils"

	"github.com/google/uuid"
)

func validateInput(input ServiceInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return utils.ValidationError("service title is required")
	}
	if input.Price < 0 {
		return utils.ValidationError("price must not be negative")
	}
	if input.Duration < 0 {
		return utils.ValidationError("duration must not be negative")
	}
	return nil
}

func (s *DefaultCatalogService) CreateService(providerID string, input ServiceInput) (*models.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	service := models.Service{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(&service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &service, nil
}

func (s *DefaultCatalogService) UpdateService(providerID, serviceID string, input ServiceInput) (*models.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	service, err := s.owned(providerID, serviceID)
	if err != nil {
		return nil, err
	}

	service.Title = strings.TrimSpace(input.Title)
	service.Description = input.Description
	service.Price = input.Price
	service.Duration = input.Duration
	service.UpdatedAt = time.Now()

	if err := s.Repo.Update(service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

func (s *DefaultCatalogService) DeleteService(providerID, serviceID string) error {
	if _, err := s.owned(providerID, serviceID); err != nil {
		return err
	}
	if err := s.Repo.Delete(serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListByProvider(providerID string) ([]models.Service, error) {
	services, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *DefaultCatalogService) GetService(serviceID string) (*models.Service, error) {
	service, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, utils.NotFoundError("service %s not found", serviceID)
	}
	return service, nil
}

// owned fetches a service and verifies the caller is its owning provider.
func (s *DefaultCatalogService) owned(providerID, serviceID string) (*models.Service, error) {
	service, err := s.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	if service.ProviderID != providerID {
		return nil, utils.AuthorizationError("service %s does not belong to this provider", serviceID)
	}
	return service, nil
}
