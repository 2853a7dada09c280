package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edgeapi/config"
	"edgeapi/handlers"
	"edgeapi/middleware"
	"edgeapi/routes"
	"edgeapi/services/bookla"
	"edgeapi/services/identity"
	"edgeapi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	booklaClient := bookla.NewClient(config.AppConfig, logger)

	var verifier identity.Verifier = identity.Decoder{}
	if secret := config.AppConfig.IdentityJWTSecret; secret != "" {
		verifier = identity.HMACVerifier{Secret: []byte(secret)}
		logger.Sugar().Info("main: identity verification enabled")
	} else {
		logger.Sugar().Warn("main: IDENTITY_JWT_SECRET not set, decoding tokens without verification")
	}

	bridgeHandler := handlers.NewBridgeHandler(booklaClient, verifier, logger)

	// Register routes.
	routes.RegisterRoutes(router, bridgeHandler)

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
