package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"studentreg-be/internal/cache"
	"studentreg-be/internal/config"
	"studentreg-be/internal/controllers"
	"studentreg-be/internal/database"
	"studentreg-be/internal/middleware"
	"studentreg-be/internal/repository"
	"studentreg-be/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
		defer cacheClient.Close()
	}

	// Initialize repository and service
	studentRepo := repository.NewStudentRepository(db)
	registrationService := service.NewRegistrationService(studentRepo, cacheClient, cfg.BcryptCost)

	// Initialize controllers
	studentController := controllers.NewStudentController(registrationService)
	healthController := controllers.NewHealthController()

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORS())

	// API routes
	api := router.Group("/api")
	{
		api.GET("/health", healthController.Health)
		api.POST("/students", studentController.Register)
	}

	// Static browser client, with an index.html fallback for client-side routes
	router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	router.StaticFile("/client.js", filepath.Join(cfg.StaticDir, "client.js"))
	router.StaticFile("/styles.css", filepath.Join(cfg.StaticDir, "styles.css"))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal, then drain in-flight requests
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Println("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Server stopped")
}
