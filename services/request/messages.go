package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"servlink/models"
	"servlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppendMessage adds one message to the request thread. The append is a
// single atomic list-insertion on the stored document, so simultaneous
// messages from both participants are all preserved in insertion order.
func (s *DefaultRequestService) AppendMessage(requestID, senderID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.ValidationError("message text is required")
	}

	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}
	if req == nil {
		return nil, utils.NotFoundError("request %s not found", requestID)
	}
	if !req.Participant(senderID) {
		return nil, utils.AuthorizationError("only request participants may send messages")
	}

	msg := models.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.Repo.AppendMessage(requestID, msg); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	recipient := req.SeekerID
	if senderID == req.SeekerID {
		recipient = req.ProviderID
	}
	s.push(recipient, "New message", fmt.Sprintf("New message about %q.", req.ServiceTitle), req.ID)

	return &msg, nil
}

// push sends a best-effort notification; delivery failures never fail the
// operation that triggered them.
func (s *DefaultRequestService) push(userID, title, body, requestID string) {
	if s.Notify == nil {
		return
	}
	data := map[string]string{"requestId": requestID}
	if err := s.Notify.SendPush(context.Background(), userID, title, body, data); err != nil {
		utils.GetLogger().Warn("request: push notification failed",
			zap.String("userID", userID), zap.Error(err))
	}
}
