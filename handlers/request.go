package handlers

import (
	"net/http"

	"servlink/models"
	"servlink/services/request"
	"servlink/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves the request lifecycle and message thread endpoints.
type RequestHandler struct {
	Service request.RequestService
}

func NewRequestHandler(s request.RequestService) *RequestHandler {
	return &RequestHandler{Service: s}
}

// CreateRequestHandler opens a new pending request from the authenticated seeker.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	var req request.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.CreateRequest(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRequestsHandler lists the caller's requests, scoped by their role.
func (h *RequestHandler) ListRequestsHandler(c *gin.Context) {
	userID := currentUserID(c)
	role, _ := c.Get("role")

	var (
		requests []models.ServiceRequest
		err      error
	)
	if role == models.RoleProvider {
		requests, err = h.Service.ListForProvider(userID)
	} else {
		requests, err = h.Service.ListForSeeker(userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if requests == nil {
		requests = []models.ServiceRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetRequestHandler returns one request, participants only.
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	req, err := h.Service.GetRequest(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// AcceptRequestHandler moves a pending request to accepted.
func (h *RequestHandler) AcceptRequestHandler(c *gin.Context) {
	h.transition(c, h.Service.AcceptRequest)
}

// DeclineRequestHandler moves a pending request to declined.
func (h *RequestHandler) DeclineRequestHandler(c *gin.Context) {
	h.transition(c, h.Service.DeclineRequest)
}

// CompleteRequestHandler moves an accepted request to completed.
func (h *RequestHandler) CompleteRequestHandler(c *gin.Context) {
	h.transition(c, h.Service.CompleteRequest)
}

func (h *RequestHandler) transition(c *gin.Context, op func(requestID, actorID string) (*models.ServiceRequest, error)) {
	updated, err := op(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AppendMessageHandler appends one message to the request thread.
func (h *RequestHandler) AppendMessageHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	msg, err := h.Service.AppendMessage(c.Param("id"), currentUserID(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
