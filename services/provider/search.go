package provider

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"servlink/models"
)

// ListProviders applies the filter dimensions, joins each surviving profile
// with its rating aggregate (recomputed from the reviews collection on every
// call), and orders the result.
func (s *DefaultProviderService) ListProviders(filter ProviderFilter) ([]models.ProviderSummary, error) {
	var (
		profiles []models.ProviderProfile
		err      error
	)
	if filter.Category != "" {
		profiles, err = s.Repo.GetByCategory(filter.Category)
	} else {
		profiles, err = s.Repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	profiles = applyTextFilters(profiles, filter)

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	ratings := map[string]models.RatingSummary{}
	if len(ids) > 0 {
		ratings, err = s.Reviews.AggregateForSubjects(ids, models.ReviewKindProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to compute ratings: %w", err)
		}
	}

	summaries := make([]models.ProviderSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, models.ProviderSummary{
			ProviderProfile: p,
			Rating:          ratings[p.ID], // zero-review providers keep the zero aggregate
		})
	}

	sortSummaries(summaries, filter.SortBy)
	return summaries, nil
}

func applyTextFilters(profiles []models.ProviderProfile, filter ProviderFilter) []models.ProviderProfile {
	location := strings.ToLower(strings.TrimSpace(filter.Location))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if location == "" && search == "" {
		return profiles
	}

	matched := profiles[:0]
	for _, p := range profiles {
		if location != "" &&
			!strings.Contains(strings.ToLower(p.City), location) &&
			!strings.Contains(strings.ToLower(p.State), location) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.DisplayName), search) &&
			!strings.Contains(strings.ToLower(p.Bio), search) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func sortSummaries(summaries []models.ProviderSummary, sortBy string) {
	switch sortBy {
	case SortByPrice:
		// Lowest price first; a missing rate sorts last.
		sort.SliceStable(summaries, func(i, j int) bool {
			return effectiveRate(summaries[i]) < effectiveRate(summaries[j])
		})
	default:
		// Highest rated first; zero-review providers carry rating 0 and land last.
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Rating.Average > summaries[j].Rating.Average
		})
	}
}

func effectiveRate(s models.ProviderSummary) float64 {
	if s.HourlyRate <= 0 {
		return math.Inf(1)
	}
	return s.HourlyRate
}
