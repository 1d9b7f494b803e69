package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/taskboard-api/api/v1"
	"github.com/taskboard-api/config"
	"github.com/taskboard-api/database"
	"github.com/taskboard-api/middleware"
)

func main() {
	config.LoadEnv()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("🔌 Connected to the database")

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	// Centralized error translation
	router.Use(middleware.ErrorHandler())

	// Health check endpoint, outside the API prefix and independent of the store
	healthController := v1.NewHealthController()
	healthController.RegisterRoutes(router)

	// API routes
	apiGroup := router.Group("/api/v1")
	v1.RegisterRoutes(apiGroup, db)

	router.NoRoute(middleware.NotFoundHandler())

	port := config.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server running on port %s", port)
		log.Printf("🔗 Base URL: http://localhost:%s/api/v1", port)
		log.Printf("🩺 Health check: http://localhost:%s/health", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting connections, drain in-flight requests,
	// close the store connection, then exit.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down, waiting for in-flight requests to finish")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
	log.Println("👋 Server stopped")
}
