// File: visado/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visado/config"
	"visado/handlers"
	"visado/middleware"
	"visado/routes"
	"visado/services/chatbot"
	"visado/services/scheduling"
	"visado/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLGlob("templates/*.html")

	// The slot grid is built exactly once; rebuilding it later would reset
	// live counters under existing bookings.
	scheduler := scheduling.NewDefaultSchedulingService(
		config.AppConfig.HorizonDays,
		scheduling.DefaultTimesOfDay,
		config.AppConfig.SlotCapacity,
	)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	var sessionStore chatbot.SessionStore
	if config.AppConfig.UseRedisSessions {
		sessionStore = chatbot.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
		logger.Sugar().Info("main: chat sessions backed by redis")
	} else {
		sessionStore = chatbot.NewMemorySessionStore(sessionTTL)
	}

	chatService := &chatbot.DefaultChatService{
		Scheduler: scheduler,
		Sessions:  sessionStore,
	}

	bookingHandler := handlers.NewBookingHandler(scheduler, logger)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(scheduler)
	pageHandler := handlers.NewPageHandler(scheduler)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// HTML pages.
		IndexPage:         pageHandler.IndexPage,
		BookingFormPage:   pageHandler.BookingFormPage,
		BookingResultPage: pageHandler.BookingResultPage,
		AdminPage:         pageHandler.AdminPage,

		// Booking endpoints.
		GetAvailabilityHandler:   bookingHandler.GetAvailabilityHandler,
		CreateAppointmentHandler: bookingHandler.CreateAppointmentHandler,
		GetAppointmentHandler:    bookingHandler.GetAppointmentHandler,
		CancelAppointmentHandler: bookingHandler.CancelAppointmentHandler,

		// Chat endpoint.
		ChatTurnHandler: chatHandler.ChatTurnHandler,

		// Admin endpoints.
		GetStatsHandler: adminHandler.GetStatsHandler,
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
