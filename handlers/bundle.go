package handlers

import (
	userRepo "servlink/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates everything route registration needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Auth / account endpoints.
	SignUpHandler   gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	GetMeHandler    gin.HandlerFunc
	UpdateMeHandler gin.HandlerFunc
	DeleteMeHandler gin.HandlerFunc

	// Provider endpoints.
	Providers *ProviderHandler

	// Service listing endpoints.
	Catalog *CatalogHandler

	// Request lifecycle endpoints.
	Requests *RequestHandler

	// Review endpoints.
	Reviews *ReviewHandler

	// Storage endpoints.
	Storage *StorageHandler
}
