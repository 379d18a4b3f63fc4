package provider

import (
	"fmt"
	"time"

	"servlink/models"
	"servlink/utils"
)

func (s *DefaultProviderService) GetProvider(id string) (*models.ProviderSummary, error) {
	profile, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if profile == nil {
		return nil, utils.NotFoundError("provider %s not found", id)
	}

	rating, err := s.Reviews.Aggregate(id, models.ReviewKindProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rating for provider %s: %w", id, err)
	}

	return &models.ProviderSummary{ProviderProfile: *profile, Rating: rating}, nil
}

// UpdateProfile validates and saves the editable profile fields. Only the
// owning provider reaches this path; the route is gated on the provider role
// and the ID comes from the authenticated context.
func (s *DefaultProviderService) UpdateProfile(providerID string, update ProfileUpdate) (*models.ProviderProfile, error) {
	if update.Category != "" && !models.ValidCategory(update.Category) {
		return nil, utils.ValidationError("unknown service category %q", update.Category)
	}
	if update.HourlyRate < 0 {
		return nil, utils.ValidationError("hourly rate must not be negative")
	}
	if update.YearsOfExperience < 0 {
		return nil, utils.ValidationError("years of experience must not be negative")
	}

	profile, err := s.Repo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if profile == nil {
		return nil, utils.NotFoundError("provider %s not found", providerID)
	}

	profile.Bio = update.Bio
	profile.Phone = update.Phone
	profile.Address = update.Address
	profile.City = update.City
	profile.State = update.State
	profile.Zip = update.Zip
	profile.Category = update.Category
	profile.HourlyRate = update.HourlyRate
	profile.YearsOfExperience = update.YearsOfExperience
	if update.PhotoURL != "" {
		profile.PhotoURL = update.PhotoURL
	}
	profile.UpdatedAt = time.Now()

	if err := s.Repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to save provider profile: %w", err)
	}
	return profile, nil
}
