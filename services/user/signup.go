package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "servlink/database/repository/user"
	"servlink/models"
	"servlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUp validates the request, persists the account, and returns an auth
// response with a freshly issued token. A provider signup also creates the
// empty provider profile under the same ID.
func (s *DefaultUserService) SignUp(req SignUpRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		return nil, utils.ValidationError("email, password and display name are required")
	}
	if !models.ValidRole(req.Role) {
		return nil, utils.ValidationError("role must be %q or %q", models.RoleProvider, models.RoleSeeker)
	}
	if len(req.Password) < 8 {
		return nil, utils.ValidationError("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, utils.DuplicateError("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         req.Role,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, utils.DuplicateError("a user with this email already exists")
		}
		utils.GetLogger().Error("SignUp: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if userObj.Role == models.RoleProvider {
		profile := models.ProviderProfile{
			ID:          userObj.ID,
			DisplayName: userObj.DisplayName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Providers.Create(&profile); err != nil {
			utils.GetLogger().Error("SignUp: failed to create provider profile", zap.Error(err))
			return nil, fmt.Errorf("registration failed, please try again")
		}
	}

	return s.issueToken(&userObj)
}
