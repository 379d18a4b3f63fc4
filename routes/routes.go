package routes

import (
	"net/http"
	"time"

	"servlink/handlers"
	"servlink/middleware"
	"servlink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup/login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.JWTAuthMiddleware(hb.UserRepo), hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("/me", hb.GetMeHandler)
		api.PATCH("/me", hb.UpdateMeHandler)
		api.DELETE("/me", hb.DeleteMeHandler)
		api.GET("/:id/feedback", hb.Reviews.ListCustomerFeedbackHandler)
	}
}

// RegisterProviderRoutes registers provider discovery and profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public discovery endpoints.
		api.GET("", hb.Providers.ListProvidersHandler)
		api.GET("/:id", hb.Providers.GetProviderHandler)
		api.GET("/:id/services", hb.Catalog.ListProviderServicesHandler)
		api.GET("/:id/reviews", hb.Reviews.ListProviderReviewsHandler)

		// Profile editing requires the provider role.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider))
		protected.PUT("/me", hb.Providers.UpdateProfileHandler)
	}
}

// RegisterServiceRoutes registers service listing management endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider))
	{
		api.POST("", hb.Catalog.CreateServiceHandler)
		api.PATCH("/:id", hb.Catalog.UpdateServiceHandler)
		api.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
	}
}

// RegisterRequestRoutes registers the request lifecycle endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRole(models.RoleSeeker), hb.Requests.CreateRequestHandler)
		api.GET("", hb.Requests.ListRequestsHandler)
		api.GET("/:id", hb.Requests.GetRequestHandler)
		api.POST("/:id/messages", hb.Requests.AppendMessageHandler)

		// Status transitions belong to the assigned provider.
		providerOnly := api.Group("")
		providerOnly.Use(middleware.RequireRole(models.RoleProvider))
		providerOnly.POST("/:id/accept", hb.Requests.AcceptRequestHandler)
		providerOnly.POST("/:id/decline", hb.Requests.DeclineRequestHandler)
		providerOnly.POST("/:id/complete", hb.Requests.CompleteRequestHandler)
	}
}

// RegisterReviewRoutes registers review submission endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("/provider", middleware.RequireRole(models.RoleSeeker), hb.Reviews.SubmitProviderReviewHandler)
		api.POST("/customer", middleware.RequireRole(models.RoleProvider), hb.Reviews.SubmitCustomerFeedbackHandler)
	}
}

// RegisterStorageRoutes registers upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider))
	{
		api.POST("/photo", hb.Storage.UploadPhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
