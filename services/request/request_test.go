package request

import (
	"context"
	"sync"
	"testing"
	"time"

	requestRepo "servlink/database/repository/request"
	"servlink/models"
	"servlink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestRepo keeps requests in memory while honoring the atomicity
// contract of the real repository: status changes and message appends happen
// under one lock.
type fakeRequestRepo struct {
	mu   sync.Mutex
	byID map[string]*models.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byID: map[string]*models.ServiceRequest{}}
}

func (f *fakeRequestRepo) Create(req *models.ServiceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *req
	f.byID[req.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	cp.Messages = append([]models.Message(nil), req.Messages...)
	return &cp, nil
}

func (f *fakeRequestRepo) GetBySeeker(seekerID string) ([]models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ServiceRequest
	for _, req := range f.byID {
		if req.SeekerID == seekerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) GetByProvider(providerID string) ([]models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ServiceRequest
	for _, req := range f.byID {
		if req.ProviderID == providerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) CompareAndSetStatus(id, providerID, expected, next string) (*models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.byID[id]
	if !ok || req.ProviderID != providerID || req.Status != expected {
		return nil, requestRepo.ErrNoPendingMatch
	}
	req.Status = next
	req.UpdatedAt = time.Now()
	cp := *req
	return &cp, nil
}

func (f *fakeRequestRepo) AppendMessage(id string, msg models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.byID[id]
	if !ok {
		return requestRepo.ErrNoPendingMatch
	}
	req.Messages = append(req.Messages, msg)
	req.UpdatedAt = time.Now()
	return nil
}

type fakeServiceRepo struct {
	byID map[string]*models.Service
}

func (f *fakeServiceRepo) Create(s *models.Service) error  { f.byID[s.ID] = s; return nil }
func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	return f.byID[id], nil
}
func (f *fakeServiceRepo) GetByProvider(string) ([]models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Update(*models.Service) error                   { return nil }
func (f *fakeServiceRepo) Delete(string) error                            { return nil }

// recordingNotifier captures pushes so tests can assert on delivery targets.
type recordingNotifier struct {
	mu     sync.Mutex
	pushes []string
}

func (n *recordingNotifier) SendPush(_ context.Context, userID, _, _ string, _ map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, userID)
	return nil
}

func newTestService() (*DefaultRequestService, *fakeRequestRepo, *recordingNotifier) {
	repo := newFakeRequestRepo()
	services := &fakeServiceRepo{byID: map[string]*models.Service{
		"svc-1": {ID: "svc-1", ProviderID: "prov-1", Title: "Pipe repair"},
	}}
	notify := &recordingNotifier{}
	return &DefaultRequestService{Repo: repo, Services: services, Notify: notify}, repo, notify
}

func TestCreateRequestOpensPendingThread(t *testing.T) {
	svc, _, notify := newTestService()

	req, err := svc.CreateRequest("seeker-1", CreateInput{
		ProviderID: "prov-1",
		ServiceID:  "svc-1",
		Message:    "  Can you come Tuesday?  ",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, "seeker-1", req.SeekerID)
	assert.Equal(t, "Pipe repair", req.ServiceTitle)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "Can you come Tuesday?", req.Messages[0].Text)
	assert.Equal(t, "seeker-1", req.Messages[0].SenderID)
	assert.Equal(t, []string{"prov-1"}, notify.pushes)
}

func TestCreateRequestRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name  string
		actor string
		input CreateInput
	}{
		{"missing provider", "seeker-1", CreateInput{ServiceID: "svc-1", Message: "hi"}},
		{"missing message", "seeker-1", CreateInput{ProviderID: "prov-1", ServiceID: "svc-1", Message: "   "}},
		{"self request", "prov-1", CreateInput{ProviderID: "prov-1", ServiceID: "svc-1", Message: "hi"}},
		{"service of another provider", "seeker-1", CreateInput{ProviderID: "prov-2", ServiceID: "svc-1", Message: "hi"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRequest(tc.actor, tc.input)
			require.Error(t, err)
			assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))
		})
	}
}

func TestCreateRequestUnknownService(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRequest("seeker-1", CreateInput{ProviderID: "prov-1", ServiceID: "nope", Message: "hi"})
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrCode(err))
}

func seedRequest(repo *fakeRequestRepo, status string) *models.ServiceRequest {
	req := &models.ServiceRequest{
		ID:           "req-1",
		SeekerID:     "seeker-1",
		ProviderID:   "prov-1",
		ServiceID:    "svc-1",
		ServiceTitle: "Pipe repair",
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	repo.Create(req)
	return req
}

func TestLifecycleTransitions(t *testing.T) {
	svc, repo, notify := newTestService()
	seedRequest(repo, models.RequestPending)

	accepted, err := svc.AcceptRequest("req-1", "prov-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, accepted.Status)

	completed, err := svc.CompleteRequest("req-1", "prov-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, completed.Status)

	// The seeker hears about every transition.
	assert.Equal(t, []string{"seeker-1", "seeker-1"}, notify.pushes)
}

func TestDeclineRequest(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestPending)

	declined, err := svc.DeclineRequest("req-1", "prov-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestDeclined, declined.Status)
}

func TestTransitionRequiresAssignedProvider(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestPending)

	_, err := svc.AcceptRequest("req-1", "prov-2")
	require.Error(t, err)
	assert.Equal(t, utils.CodeUnauthorized, utils.ErrCode(err))

	// The seeker cannot drive status either.
	_, err = svc.AcceptRequest("req-1", "seeker-1")
	require.Error(t, err)
	assert.Equal(t, utils.CodeUnauthorized, utils.ErrCode(err))
}

func TestTransitionRequiresExpectedStatus(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestDeclined)

	_, err := svc.AcceptRequest("req-1", "prov-1")
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))

	_, err = svc.CompleteRequest("req-1", "prov-1")
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))
}

func TestConcurrentTransitionsResolveToOneWinner(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestPending)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.AcceptRequest("req-1", "prov-1")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.DeclineRequest("req-1", "prov-1")
	}()
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one transition must win")

	final, err := repo.GetByID("req-1")
	require.NoError(t, err)
	assert.Contains(t, []string{models.RequestAccepted, models.RequestDeclined}, final.Status)
}

func TestAppendMessage(t *testing.T) {
	svc, repo, notify := newTestService()
	seedRequest(repo, models.RequestAccepted)

	msg, err := svc.AppendMessage("req-1", "prov-1", "  On my way  ")
	require.NoError(t, err)
	assert.Equal(t, "On my way", msg.Text)
	assert.Equal(t, "prov-1", msg.SenderID)

	// The other participant gets the push.
	assert.Equal(t, []string{"seeker-1"}, notify.pushes)

	stored, err := repo.GetByID("req-1")
	require.NoError(t, err)
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, msg.ID, stored.Messages[0].ID)
}

func TestAppendMessageRules(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestAccepted)

	_, err := svc.AppendMessage("req-1", "prov-1", "   ")
	assert.Equal(t, utils.CodeValidation, utils.ErrCode(err))

	_, err = svc.AppendMessage("req-1", "stranger", "hello")
	assert.Equal(t, utils.CodeUnauthorized, utils.ErrCode(err))

	_, err = svc.AppendMessage("missing", "prov-1", "hello")
	assert.Equal(t, utils.CodeNotFound, utils.ErrCode(err))
}

func TestConcurrentAppendsAllPreserved(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestAccepted)

	const perSide = 20
	var wg sync.WaitGroup
	wg.Add(2 * perSide)
	for i := 0; i < perSide; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AppendMessage("req-1", "seeker-1", "from seeker")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.AppendMessage("req-1", "prov-1", "from provider")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.GetByID("req-1")
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 2*perSide)
}

func TestGetRequestVisibleToParticipantsOnly(t *testing.T) {
	svc, repo, _ := newTestService()
	seedRequest(repo, models.RequestPending)

	_, err := svc.GetRequest("req-1", "seeker-1")
	assert.NoError(t, err)
	_, err = svc.GetRequest("req-1", "prov-1")
	assert.NoError(t, err)

	_, err = svc.GetRequest("req-1", "stranger")
	assert.Equal(t, utils.CodeUnauthorized, utils.ErrCode(err))

	_, err = svc.GetRequest("missing", "seeker-1")
	assert.Equal(t, utils.CodeNotFound, utils.ErrCode(err))
}
