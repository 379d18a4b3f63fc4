package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servlink/config"
	"servlink/database"
	providerRepoPkg "servlink/database/repository/provider"
	requestRepoPkg "servlink/database/repository/request"
	reviewRepoPkg "servlink/database/repository/review"
	serviceRepoPkg "servlink/database/repository/service"
	userRepoPkg "servlink/database/repository/user"
	"servlink/handlers"
	"servlink/middleware"
	"servlink/routes"
	"servlink/services/catalog"
	"servlink/services/notification"
	"servlink/services/provider"
	"servlink/services/request"
	"servlink/services/review"
	"servlink/services/user"
	"servlink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	if err := userRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	reqRepo := requestRepoPkg.NewMongoRequestRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	var notifyService notification.NotificationService
	if ns, err := notification.NewDefaultNotificationService(userRepo); err != nil {
		logger.Sugar().Warnf("main: push notifications disabled: %v", err)
	} else {
		notifyService = ns
	}

	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Providers: provRepo,
	}
	handlers.SetUserService(userService)

	providerService := &provider.DefaultProviderService{
		Repo:    provRepo,
		Reviews: revRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: svcRepo,
	}
	requestService := &request.DefaultRequestService{
		Repo:     reqRepo,
		Services: svcRepo,
		Notify:   notifyService,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     revRepo,
		Requests: reqRepo,
		Notify:   notifyService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		SignUpHandler:   handlers.SignUpHandler,
		LoginHandler:    handlers.LoginHandler,
		LogoutHandler:   handlers.LogoutHandler,
		GetMeHandler:    handlers.GetMeHandler,
		UpdateMeHandler: handlers.UpdateMeHandler,
		DeleteMeHandler: handlers.DeleteMeHandler,

		Providers: handlers.NewProviderHandler(providerService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Requests:  handlers.NewRequestHandler(requestService),
		Reviews:   handlers.NewReviewHandler(reviewService),
		Storage:   handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
