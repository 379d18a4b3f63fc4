package handlers

import (
	"net/http"

	"servlink/models"
	"servlink/services/review"
	"servlink/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves review submission and listing endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(s review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: s}
}

// SubmitProviderReviewHandler lets a seeker rate a provider after completion.
func (h *ReviewHandler) SubmitProviderReviewHandler(c *gin.Context) {
	h.submit(c, models.ReviewKindProvider)
}

// SubmitCustomerFeedbackHandler lets a provider rate a customer after completion.
func (h *ReviewHandler) SubmitCustomerFeedbackHandler(c *gin.Context) {
	h.submit(c, models.ReviewKindCustomer)
}

func (h *ReviewHandler) submit(c *gin.Context, kind string) {
	var req review.SubmitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	rev, err := h.Service.SubmitReview(kind, currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListProviderReviewsHandler returns a provider's reviews with the aggregate.
func (h *ReviewHandler) ListProviderReviewsHandler(c *gin.Context) {
	list, err := h.Service.ListForSubject(c.Param("id"), models.ReviewKindProvider)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListCustomerFeedbackHandler returns the feedback a customer has received.
func (h *ReviewHandler) ListCustomerFeedbackHandler(c *gin.Context) {
	list, err := h.Service.ListForSubject(c.Param("id"), models.ReviewKindCustomer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
