package review

import (
	requestRepo "servlink/database/repository/request"
	reviewRepo "servlink/database/repository/review"
	"servlink/models"
	"servlink/services/notification"
)

// SubmitInput carries a review submission. Kind determines the required
// orientation: a provider review is authored by the request's seeker about
// its provider, customer feedback the reverse.
type SubmitInput struct {
	SubjectID        string `json:"subjectId"`
	ServiceRequestID string `json:"serviceRequestId"`
	Rating           int    `json:"rating"`
	Comment          string `json:"comment"`
}

// ReviewList is a subject's reviews together with the aggregate computed on
// read from the same collection.
type ReviewList struct {
	Reviews []models.Review      `json:"reviews"`
	Rating  models.RatingSummary `json:"rating"`
}

// ReviewService enforces the at-most-one-review rule per
// (author, subject, request) tuple and serves rating aggregates.
type ReviewService interface {
	SubmitReview(kind, authorID string, input SubmitInput) (*models.Review, error)
	ListForSubject(subjectID, kind string) (*ReviewList, error)
}

// DefaultReviewService is the production implementation. Notify may be nil.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Requests requestRepo.RequestRepository
	Notify   notification.NotificationService
}
