package reviewRepo

import (
	"errors"

	"servlink/models"
)

// ErrDuplicateReview is returned when an insert collides with an existing
// review for the same (kind, author, subject, request) tuple.
var ErrDuplicateReview = errors.New("review already exists for this service request")

// ReviewRepository defines methods for review data access. Reviews are
// immutable: there is deliberately no update or delete method.
type ReviewRepository interface {
	// Insert stores a new review. The review's deterministic key makes a
	// concurrent duplicate submission fail with ErrDuplicateReview rather
	// than racing a lookup.
	Insert(review *models.Review) error
	// GetBySubject retrieves reviews about a subject for one kind, newest first.
	GetBySubject(subjectID, kind string) ([]models.Review, error)
	// Aggregate computes the mean rating and count for one subject.
	Aggregate(subjectID, kind string) (models.RatingSummary, error)
	// AggregateForSubjects computes rating summaries for many subjects in one
	// round trip. Subjects without reviews are absent from the result map.
	AggregateForSubjects(subjectIDs []string, kind string) (map[string]models.RatingSummary, error)
}
