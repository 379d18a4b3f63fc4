package provider

import (
	providerRepo "servlink/database/repository/provider"
	reviewRepo "servlink/database/repository/review"
	"servlink/models"
)

// Sort orders accepted by ListProviders.
const (
	SortByRating = "rating"
	SortByPrice  = "price"
)

// ProviderFilter narrows and orders a provider listing. Zero values leave the
// corresponding dimension unfiltered.
type ProviderFilter struct {
	Category string // exact, case-sensitive match against the enumerated set
	Location string // case-insensitive substring over city and state
	Search   string // case-insensitive substring over display name and bio
	SortBy   string // SortByRating (default) or SortByPrice
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Bio               string  `json:"bio"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	Category          string  `json:"category"`
	HourlyRate        float64 `json:"hourlyRate"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	PhotoURL          string  `json:"photoURL"`
}

type ProviderService interface {
	// GetProvider returns a profile joined with its rating aggregate.
	GetProvider(id string) (*models.ProviderSummary, error)
	// ListProviders filters, joins ratings, and orders provider profiles.
	// An empty result is a valid empty slice, not an error.
	ListProviders(filter ProviderFilter) ([]models.ProviderSummary, error)
	// UpdateProfile saves the owner's profile fields.
	UpdateProfile(providerID string, update ProfileUpdate) (*models.ProviderProfile, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo    providerRepo.ProviderRepository
	Reviews reviewRepo.ReviewRepository
}
