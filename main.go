package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"occlusa/config"
	"occlusa/database"
	appointmentRepo "occlusa/database/repository/appointment"
	auditRepo "occlusa/database/repository/audit"
	providerRepo "occlusa/database/repository/provider"
	"occlusa/handlers"
	"occlusa/middleware"
	"occlusa/routes"
	"occlusa/services/scheduling"
	"occlusa/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient := utils.GetCacheClient()

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	provRepo := providerRepo.NewMongoProviderRepo(db)
	audRepo := auditRepo.NewMongoAuditRepo(db)

	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	if err := provRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure provider indexes: %v", err)
	}

	// scheduling engine.
	schedulingService := &scheduling.DefaultSchedulingService{
		Appointments: apptRepo,
		Providers:    provRepo,
		Audit:        audRepo,
		Cache:        cacheClient,
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheSec) * time.Second,
	}

	appointmentHandler := handlers.NewAppointmentHandler(schedulingService)
	providerHandler := handlers.NewProviderHandler(provRepo)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, appointmentHandler, providerHandler)

	utils.StartHealthMonitor(cacheClient, mongoClient)

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
	if err := database.Disconnect(ctx, mongoClient); err != nil {
		logger.Sugar().Warnf("main: error closing MongoDB client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
