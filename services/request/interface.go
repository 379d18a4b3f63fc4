package request

import (
	requestRepo "servlink/database/repository/request"
	serviceRepo "servlink/database/repository/service"
	"servlink/models"
	"servlink/services/notification"
)

// CreateInput carries the fields a seeker submits to open a request.
type CreateInput struct {
	ProviderID string `json:"providerId"`
	ServiceID  string `json:"serviceId"`
	Message    string `json:"message"`
}

// RequestService owns the request state machine and the message thread.
//
// Transitions: pending -> accepted|declined, accepted -> completed. Only the
// assigned provider may transition; completion is what unlocks reviews.
type RequestService interface {
	CreateRequest(seekerID string, input CreateInput) (*models.ServiceRequest, error)
	AcceptRequest(requestID, actorID string) (*models.ServiceRequest, error)
	DeclineRequest(requestID, actorID string) (*models.ServiceRequest, error)
	CompleteRequest(requestID, actorID string) (*models.ServiceRequest, error)
	AppendMessage(requestID, senderID, text string) (*models.Message, error)
	GetRequest(requestID, viewerID string) (*models.ServiceRequest, error)
	ListForSeeker(seekerID string) ([]models.ServiceRequest, error)
	ListForProvider(providerID string) ([]models.ServiceRequest, error)
}

// DefaultRequestService is the production implementation. Notify may be nil,
// in which case no pushes are sent.
type DefaultRequestService struct {
	Repo     requestRepo.RequestRepository
	Services serviceRepo.ServiceRepository
	Notify   notification.NotificationService
}
