package catalog

import (
	"testing"

	"servlink/models"
	"servlink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	byID map[string]models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{byID: map[string]models.Service{}}
}

func (f *fakeServiceRepo) Create(s *models.Service) error {
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeServiceRepo) GetByProvider(providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.byID {
		if s.ProviderID == providerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(s *models.Service) error {
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeServiceRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func TestCreateService(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}

	created, err := svc.CreateService("prov-1", ServiceInput{
		Title:       "  Drain cleaning  ",
		Description: "Clears any household drain",
		Price:       95,
		Duration:    60,
	})
	require.NoError(t, err)
	assert.Equal(t, "Drain cleaning", created.Title)
	assert.Equal(t, "prov-1", created.ProviderID)
	assert.NotEmpty(t, created.ID)
}

func TestCreateServiceValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}

	cases := []struct {
		name  string
		input ServiceInput
	}{
		{"blank title", ServiceInput{Title: "   ", Price: 10}},
		{"negative price", ServiceInput{Title: "ok", Price: -1}},
		{"negative duration", ServiceInput{Title: "ok", Duration: -30}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateService("prov-1", tc.input)
			require.Error(t, err)
			assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))
		})
	}
}

func TestUpdateServiceOwnership(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService("prov-1", ServiceInput{Title: "Mowing", Price: 40})
	require.NoError(t, err)

	_, err = svc.UpdateService("prov-2", created.ID, ServiceInput{Title: "Hijacked", Price: 1})
	require.Error(t, err)
	assert.Equal(t, utils.CodeUnauthorized, utils.ErrCode(err))

	updated, err := svc.UpdateService("prov-1", created.ID, ServiceInput{Title: "Mowing & edging", Price: 50})
	require.NoError(t, err)
	assert.Equal(t, "Mowing & edging", updated.Title)
	assert.Equal(t, 50.0, updated.Price)
}

func TestDeleteServiceOwnership(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService("prov-1", ServiceInput{Title: "Mowing", Price: 40})
	require.NoError(t, err)

	err = svc.DeleteService("prov-2", created.ID)
	require.Error(t, err)
	assert.Equal(t, utils.CodeUnauthorized, utils.ErrCode(err))

	require.NoError(t, svc.DeleteService("prov-1", created.ID))

	err = svc.DeleteService("prov-1", created.ID)
	assert.Equal(t, utils.CodeNotFound, utils.ErrCode(err))
}

func TestGetServiceNotFound(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}

	_, err := svc.GetService("missing")
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrCode(err))
}
