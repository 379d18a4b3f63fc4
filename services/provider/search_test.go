package provider

import (
	"testing"

	"servlink/models"
	"servlink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProviderRepo struct {
	profiles []models.ProviderProfile
}

func (f *fakeProviderRepo) Create(p *models.ProviderProfile) error {
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeProviderRepo) GetByID(id string) (*models.ProviderProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			cp := f.profiles[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) GetAll() ([]models.ProviderProfile, error) {
	return append([]models.ProviderProfile(nil), f.profiles...), nil
}

func (f *fakeProviderRepo) GetByCategory(category string) ([]models.ProviderProfile, error) {
	var out []models.ProviderProfile
	for _, p := range f.profiles {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) Update(p *models.ProviderProfile) error {
	for i := range f.profiles {
		if f.profiles[i].ID == p.ID {
			f.profiles[i] = *p
			return nil
		}
	}
	return nil
}

func (f *fakeProviderRepo) Delete(id string) error { return nil }

// fakeRatings serves pre-seeded aggregates; subjects without an entry have no
// reviews.
type fakeRatings struct {
	bySubject map[string]models.RatingSummary
}

func (f *fakeRatings) Insert(*models.Review) error { return nil }
func (f *fakeRatings) GetBySubject(string, string) ([]models.Review, error) {
	return nil, nil
}
func (f *fakeRatings) Aggregate(subjectID, _ string) (models.RatingSummary, error) {
	return f.bySubject[subjectID], nil
}
func (f *fakeRatings) AggregateForSubjects(subjectIDs []string, _ string) (map[string]models.RatingSummary, error) {
	out := map[string]models.RatingSummary{}
	for _, id := range subjectIDs {
		if summary, ok := f.bySubject[id]; ok {
			out[id] = summary
		}
	}
	return out, nil
}

func newSearchService() *DefaultProviderService {
	repo := &fakeProviderRepo{profiles: []models.ProviderProfile{
		{ID: "p1", DisplayName: "Ann's Plumbing", Bio: "Fast drain fixes", Category: "Plumbing", City: "Austin", State: "TX", HourlyRate: 80},
		{ID: "p2", DisplayName: "Bob Electric", Bio: "Wiring and panels", Category: "Electrical", City: "Dallas", State: "TX", HourlyRate: 120},
		{ID: "p3", DisplayName: "Casa Cleaners", Bio: "Homes and offices", Category: "Cleaning", City: "Portland", State: "OR", HourlyRate: 0},
		{ID: "p4", DisplayName: "Dale's Pipes", Bio: "plumbing done right", Category: "Plumbing", City: "Salem", State: "OR", HourlyRate: 60},
	}}
	ratings := &fakeRatings{bySubject: map[string]models.RatingSummary{
		"p1": {Average: 4.5, Count: 10},
		"p2": {Average: 3.0, Count: 2},
		"p4": {Average: 5.0, Count: 1},
	}}
	return &DefaultProviderService{Repo: repo, Reviews: ratings}
}

func ids(summaries []models.ProviderSummary) []string {
	out := make([]string, len(summaries))
	for i, s := range summaries {
		out[i] = s.ID
	}
	return out
}

func TestListProvidersCategoryIsExact(t *testing.T) {
	svc := newSearchService()

	got, err := svc.ListProviders(ProviderFilter{Category: "Plumbing"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p4"}, ids(got))

	// Lowercase does not match the enumerated value.
	got, err = svc.ListProviders(ProviderFilter{Category: "plumbing"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListProvidersLocationSubstring(t *testing.T) {
	svc := newSearchService()

	got, err := svc.ListProviders(ProviderFilter{Location: "tx"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(got))

	got, err = svc.ListProviders(ProviderFilter{Location: "port"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p3"}, ids(got))
}

func TestListProvidersSearchCoversNameAndBio(t *testing.T) {
	svc := newSearchService()

	// "plumbing" appears in p1's name and p4's bio, case-insensitively.
	got, err := svc.ListProviders(ProviderFilter{Search: "PLUMBING"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p4"}, ids(got))
}

func TestListProvidersCombinedFilters(t *testing.T) {
	svc := newSearchService()

	got, err := svc.ListProviders(ProviderFilter{Category: "Plumbing", Location: "or"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p4"}, ids(got))
}

func TestListProvidersSortByRating(t *testing.T) {
	svc := newSearchService()

	got, err := svc.ListProviders(ProviderFilter{})
	require.NoError(t, err)
	// Highest average first; p3 has no reviews and lands last.
	assert.Equal(t, []string{"p4", "p1", "p2", "p3"}, ids(got))
	assert.Equal(t, models.RatingSummary{}, got[3].Rating)
}

func TestListProvidersSortByPrice(t *testing.T) {
	svc := newSearchService()

	got, err := svc.ListProviders(ProviderFilter{SortBy: SortByPrice})
	require.NoError(t, err)
	// Cheapest first; p3 has no rate set and lands last.
	assert.Equal(t, []string{"p4", "p1", "p2", "p3"}, ids(got))
}

func TestGetProviderJoinsRating(t *testing.T) {
	svc := newSearchService()

	got, err := svc.GetProvider("p1")
	require.NoError(t, err)
	assert.Equal(t, "Ann's Plumbing", got.DisplayName)
	assert.Equal(t, 4.5, got.Rating.Average)
	assert.Equal(t, 10, got.Rating.Count)
}

func TestGetProviderNotFound(t *testing.T) {
	svc := newSearchService()

	_, err := svc.GetProvider("missing")
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrCode(err))
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := newSearchService()

	_, err := svc.UpdateProfile("p1", ProfileUpdate{Category: "Underwater Basket Weaving"})
	assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))

	_, err = svc.UpdateProfile("p1", ProfileUpdate{HourlyRate: -5})
	assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))

	_, err = svc.UpdateProfile("p1", ProfileUpdate{YearsOfExperience: -1})
	assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))
}

func TestUpdateProfileKeepsPhotoWhenOmitted(t *testing.T) {
	svc := newSearchService()

	first, err := svc.UpdateProfile("p1", ProfileUpdate{Category: "Plumbing", PhotoURL: "https://img.example/p1.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/p1.jpg", first.PhotoURL)

	second, err := svc.UpdateProfile("p1", ProfileUpdate{Category: "Plumbing", Bio: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/p1.jpg", second.PhotoURL)
	assert.Equal(t, "updated", second.Bio)
}
