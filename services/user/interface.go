package user

import (
	providerRepo "servlink/database/repository/provider"
	userRepo "servlink/database/repository/user"
	"servlink/models"
)

// SignUpRequest carries the fields collected at signup. Role is fixed for the
// lifetime of the account.
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// AuthResponse contains the user's ID, token, and account details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

type UserService interface {
	// Registration / authentication
	SignUp(req SignUpRequest) (*AuthResponse, error)
	SignIn(email, password string) (*AuthResponse, error)
	SignOut(userID string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	UpdateDisplayName(userID, displayName string) (*models.User, error)
	UpdateFCMToken(userID, token string) error
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Providers providerRepo.ProviderRepository
}
