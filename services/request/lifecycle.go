package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	requestRepo "servlink/database/repository/request"
	"servlink/models"
	"servlink/utils"

	"github.com/google/uuid"
)

// CreateRequest opens a pending request from a seeker to a provider about one
// of the provider's listed services. The initial message becomes the first
// entry of the thread.
func (s *DefaultRequestService) CreateRequest(seekerID string, input CreateInput) (*models.ServiceRequest, error) {
	message := strings.TrimSpace(input.Message)
	if input.ProviderID == "" || input.ServiceID == "" {
		return nil, utils.ValidationError("providerId and serviceId are required")
	}
	if message == "" {
		return nil, utils.ValidationError("an introductory message is required")
	}
	if seekerID == input.ProviderID {
		return nil, utils.ValidationError("cannot request a service from yourself")
	}

	service, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, utils.NotFoundError("service %s not found", input.ServiceID)
	}
	if service.ProviderID != input.ProviderID {
		return nil, utils.ValidationError("service %s is not offered by provider %s", input.ServiceID, input.ProviderID)
	}

	now := time.Now()
	req := models.ServiceRequest{
		ID:           uuid.New().String(),
		SeekerID:     seekerID,
		ProviderID:   input.ProviderID,
		ServiceID:    service.ID,
		ServiceTitle: service.Title,
		Status:       models.RequestPending,
		Messages: []models.Message{{
			ID:        uuid.New().String(),
			SenderID:  seekerID,
			Text:      message,
			Timestamp: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(&req); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	s.push(req.ProviderID, "New service request", fmt.Sprintf("You have a new request for %q.", req.ServiceTitle), req.ID)
	return &req, nil
}

// AcceptRequest moves a pending request to accepted.
func (s *DefaultRequestService) AcceptRequest(requestID, actorID string) (*models.ServiceRequest, error) {
	return s.transition(requestID, actorID, models.RequestPending, models.RequestAccepted)
}

// DeclineRequest moves a pending request to declined.
func (s *DefaultRequestService) DeclineRequest(requestID, actorID string) (*models.ServiceRequest, error) {
	return s.transition(requestID, actorID, models.RequestPending, models.RequestDeclined)
}

// CompleteRequest moves an accepted request to completed, which unlocks
// review submission for both parties.
func (s *DefaultRequestService) CompleteRequest(requestID, actorID string) (*models.ServiceRequest, error) {
	return s.transition(requestID, actorID, models.RequestAccepted, models.RequestCompleted)
}

// transition pre-checks the actor and state for precise error codes, then
// performs the actual change as a compare-and-set so a concurrent transition
// cannot slip between the check and the write.
func (s *DefaultRequestService) transition(requestID, actorID, expected, next string) (*models.ServiceRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}
	if req == nil {
		return nil, utils.NotFoundError("request %s not found", requestID)
	}
	if req.ProviderID != actorID {
		return nil, utils.AuthorizationError("only the assigned provider may change this request")
	}
	if req.Status != expected {
		return nil, utils.ValidationError("request is %s, expected %s", req.Status, expected)
	}

	updated, err := s.Repo.CompareAndSetStatus(requestID, actorID, expected, next)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNoPendingMatch) {
			// Lost a race with a concurrent transition.
			return nil, utils.ValidationError("request is no longer %s", expected)
		}
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	s.push(updated.SeekerID, "Request "+next, fmt.Sprintf("Your request for %q is now %s.", updated.ServiceTitle, next), updated.ID)
	return updated, nil
}

// GetRequest returns a request, visible only to its two participants.
func (s *DefaultRequestService) GetRequest(requestID, viewerID string) (*models.ServiceRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}
	if req == nil {
		return nil, utils.NotFoundError("request %s not found", requestID)
	}
	if !req.Participant(viewerID) {
		return nil, utils.AuthorizationError("request %s is not visible to this account", requestID)
	}
	return req, nil
}

func (s *DefaultRequestService) ListForSeeker(seekerID string) ([]models.ServiceRequest, error) {
	requests, err := s.Repo.GetBySeeker(seekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

func (s *DefaultRequestService) ListForProvider(providerID string) ([]models.ServiceRequest, error) {
	requests, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}
