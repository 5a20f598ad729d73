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

	"slotbook/config"
	"slotbook/database"
	appointmentRepo "slotbook/database/repository/appointment"
	hostRepoPkg "slotbook/database/repository/host"
	slotRepoPkg "slotbook/database/repository/slot"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/models"
	"slotbook/routes"
	"slotbook/services/booking"
	"slotbook/services/host"
	"slotbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hostRepo := hostRepoPkg.NewMongoHostRepo()
	availRepo := slotRepoPkg.NewMongoSlotRepo(models.SlotKindAvailable)
	busyRepo := slotRepoPkg.NewMongoSlotRepo(models.SlotKindBusy)
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	hostService := &host.DefaultHostService{
		Repo: hostRepo,
	}
	scheduleService := &booking.DefaultScheduleService{
		SlotRepo: availRepo,
		BusyRepo: busyRepo,
		ApptRepo: apptRepo,
		HostRepo: hostRepo,
		Cache:    utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		HostRepo: hostRepo,
		Host:     handlers.NewHostHandler(hostService),
		Schedule: handlers.NewScheduleHandler(scheduleService),
		Booking:  handlers.NewBookingHandler(scheduleService, hostService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
