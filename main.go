// File: hajz/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"hajz/config"
	"hajz/cron"
	"hajz/database"
	appointmentRepo "hajz/database/repository/appointment"
	directoryRepo "hajz/database/repository/directory"
	"hajz/handlers"
	"hajz/middleware"
	"hajz/routes"
	"hajz/services/booking"
	"hajz/services/directory"
	"hajz/services/tasks"
	"hajz/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	dirRepo := directoryRepo.NewMongoDirectoryRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// background refresh queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer asynqClient.Close()

	// services.
	directoryService := &directory.DefaultDirectoryService{
		Repo:     dirRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: 5 * time.Minute,
		Logger:   logger,
	}
	directoryService.Subscribe(func(ev directory.ChangeEvent) {
		logger.Info("directory changed",
			zap.String("kind", string(ev.Kind)),
			zap.String("id", ev.ID),
			zap.String("name", ev.Name))
	})

	bookingService := &booking.DefaultBookingService{
		Directory:    dirRepo,
		Appointments: apptRepo,
		Sessions: booking.NewRedisSessionStore(
			utils.GetSessionCacheClient(),
			time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
		),
		Cache:           utils.GetCacheClient(),
		AvailabilityTTL: time.Duration(config.AppConfig.AvailabilityTTLSeconds) * time.Second,
		Refresh:         &tasks.RefreshEnqueuer{Client: asynqClient},
		Logger:          logger,
	}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Directory:    handlers.NewDirectoryHandler(directoryService),
		Appointments: handlers.NewAppointmentHandler(bookingService),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// background workers.
	cron.InitRefreshWorker(utils.GetCacheClient())
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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
