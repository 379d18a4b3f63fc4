package models

import "time"

// Request statuses. Transitions are pending -> accepted|declined and
// accepted -> completed, always performed by the assigned provider.
const (
	RequestPending   = "pending"
	RequestAccepted  = "accepted"
	RequestDeclined  = "declined"
	RequestCompleted = "completed"
)

// Message is one entry in a request's conversation thread. Messages are
// append-only; the thread is stored in insertion order.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	SenderID  string    `bson:"senderId" json:"senderId"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ServiceRequest links one seeker, one provider and one service, and carries
// the negotiation thread between the two parties.
type ServiceRequest struct {
	ID           string    `bson:"id" json:"id"`
	SeekerID     string    `bson:"seekerId" json:"seekerId"`
	ProviderID   string    `bson:"providerId" json:"providerId"`
	ServiceID    string    `bson:"serviceId" json:"serviceId"`
	ServiceTitle string    `bson:"serviceTitle" json:"serviceTitle"`
	Status       string    `bson:"status" json:"status"`
	Messages     []Message `bson:"messages" json:"messages"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Participant reports whether userID is one of the two parties on the request.
func (r *ServiceRequest) Participant(userID string) bool {
	return userID == r.SeekerID || userID == r.ProviderID
}
