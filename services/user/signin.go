package user

import (
	"context"
	"fmt"

	"servlink/models"
	"servlink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so the response does not leak which accounts exist.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// SignIn verifies the credentials and issues a fresh token, replacing any
// token previously bound to the account.
func (s *DefaultUserService) SignIn(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(userRec)
}

// SignOut revokes the account's token and clears its cache entry.
func (s *DefaultUserService) SignOut(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("SignOut: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

// issueToken generates a JWT for the user, pins its hash to the account
// record, and primes the auth cache.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateFields(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &AuthResponse{
		ID:          userRec.ID,
		Token:       token,
		Email:       userRec.Email,
		DisplayName: userRec.DisplayName,
		Role:        userRec.Role,
	}, nil
}
