package requestRepo

import (
	"errors"

	"servlink/models"
)

// ErrNoPendingMatch is returned by CompareAndSetStatus when no document matched
// the (id, provider, expected status) triple: either the request is missing,
// assigned to a different provider, or already past the expected status.
var ErrNoPendingMatch = errors.New("request not in expected state for this provider")

// RequestRepository defines methods for service request data access.
//
// Status changes and message appends are single atomic document operations so
// that two clients acting on the same request can never lose each other's
// writes.
type RequestRepository interface {
	// Create inserts a new service request.
	Create(request *models.ServiceRequest) error
	// GetByID retrieves a request by its unique ID, or nil when absent.
	GetByID(id string) (*models.ServiceRequest, error)
	// GetBySeeker retrieves all requests created by a seeker, newest first.
	GetBySeeker(seekerID string) ([]models.ServiceRequest, error)
	// GetByProvider retrieves all requests addressed to a provider, newest first.
	GetByProvider(providerID string) ([]models.ServiceRequest, error)
	// CompareAndSetStatus atomically moves a request from expected to next,
	// but only when it is assigned to providerID. Returns ErrNoPendingMatch
	// when the guard fails.
	CompareAndSetStatus(id, providerID, expected, next string) (*models.ServiceRequest, error)
	// AppendMessage atomically appends one message to the thread and bumps
	// updatedAt. Returns ErrNoPendingMatch when the request does not exist.
	AppendMessage(id string, msg models.Message) error
}
