package user

import (
	"fmt"
	"strings"
	"time"

	"servlink/models"
	"servlink/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, utils.NotFoundError("user %s not found", userID)
	}
	return userRec, nil
}

func (s *DefaultUserService) UpdateDisplayName(userID, displayName string) (*models.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, utils.ValidationError("display name is required")
	}

	if err := s.Repo.UpdateFields(userID, bson.M{
		"displayName": displayName,
		"updatedAt":   time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to update display name: %w", err)
	}
	return s.GetUserByID(userID)
}

func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"fcmToken": token}); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

func (s *DefaultUserService) DeleteUser(userID string) error {
	userRec, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if userRec.Role == models.RoleProvider {
		// Best effort: the profile may never have been saved.
		_ = s.Providers.Delete(userID)
	}
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
