package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	reviewRepo "servlink/database/repository/review"
	"servlink/models"
	"servlink/utils"

	"go.uber.org/zap"
)

// SubmitReview validates eligibility and stores the review. Uniqueness over
// (kind, author, subject, request) is enforced by the deterministic document
// key, so two concurrent submissions for the same tuple yield exactly one
// stored review: the loser fails with a duplicate error instead of silently
// overwriting or double-inserting.
func (s *DefaultReviewService) SubmitReview(kind, authorID string, input SubmitInput) (*models.Review, error) {
	if kind != models.ReviewKindProvider && kind != models.ReviewKindCustomer {
		return nil, utils.ValidationError("unknown review kind %q", kind)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}
	if input.SubjectID == "" || input.ServiceRequestID == "" {
		return nil, utils.ValidationError("subjectId and serviceRequestId are required")
	}

	req, err := s.Requests.GetByID(input.ServiceRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}
	if req == nil {
		return nil, utils.NotFoundError("request %s not found", input.ServiceRequestID)
	}
	if req.Status != models.RequestCompleted {
		return nil, utils.ValidationError("reviews are only allowed after the request is completed")
	}

	// The author and subject must be the request's two parties in the
	// orientation the kind demands.
	switch kind {
	case models.ReviewKindProvider:
		if authorID != req.SeekerID || input.SubjectID != req.ProviderID {
			return nil, utils.AuthorizationError("review does not match the request's participants")
		}
	case models.ReviewKindCustomer:
		if authorID != req.ProviderID || input.SubjectID != req.SeekerID {
			return nil, utils.AuthorizationError("feedback does not match the request's participants")
		}
	}

	rev := models.Review{
		Key:              models.ReviewKey(kind, authorID, input.SubjectID, input.ServiceRequestID),
		Kind:             kind,
		AuthorID:         authorID,
		SubjectID:        input.SubjectID,
		ServiceRequestID: input.ServiceRequestID,
		Rating:           input.Rating,
		Comment:          strings.TrimSpace(input.Comment),
		CreatedAt:        time.Now(),
	}

	if err := s.Repo.Insert(&rev); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			return nil, utils.DuplicateError("you have already reviewed this service request")
		}
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	if s.Notify != nil {
		data := map[string]string{"requestId": req.ID}
		if err := s.Notify.SendPush(context.Background(), rev.SubjectID, "New review",
			fmt.Sprintf("You received a %d-star review.", rev.Rating), data); err != nil {
			utils.GetLogger().Warn("review: push notification failed",
				zap.String("subjectID", rev.SubjectID), zap.Error(err))
		}
	}

	return &rev, nil
}

// ListForSubject returns a subject's reviews newest-first with the mean
// rating recomputed from the stored reviews.
func (s *DefaultReviewService) ListForSubject(subjectID, kind string) (*ReviewList, error) {
	if kind != models.ReviewKindProvider && kind != models.ReviewKindCustomer {
		return nil, utils.ValidationError("unknown review kind %q", kind)
	}

	reviews, err := s.Repo.GetBySubject(subjectID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	rating, err := s.Repo.Aggregate(subjectID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rating: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &ReviewList{Reviews: reviews, Rating: rating}, nil
}
