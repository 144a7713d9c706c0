// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/taskhub/taskhub-backend/internal/api/handlers"
	"github.com/taskhub/taskhub-backend/internal/api/middleware"
	"github.com/taskhub/taskhub-backend/internal/config"
	appcron "github.com/taskhub/taskhub-backend/internal/cron"
	"github.com/taskhub/taskhub-backend/internal/db"
	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/seed"
	"github.com/taskhub/taskhub-backend/internal/service"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	postgres, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer postgres.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(postgres.Pool)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Repos:  repos,
	})
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services, cfg)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	scheduler := appcron.NewScheduler(repos.ProjectRepo)
	scheduler.Start()
	defer scheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Bound every request so slow store I/O cannot pile up handlers
	r.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeout) * time.Second))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"database":  "connected",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.GET("/:id", h.Project.Get)
			projects.GET("/name/:name", h.Project.GetByName)
			projects.GET("/with-status/:status", h.Project.ListWithStatus)
			projects.GET("/in-priority-range", h.Project.ListInPriorityRange)
			projects.GET("/start-in-date-range", h.Project.ListStartInRange)
			projects.GET("/start-after-date", h.Project.ListStartAfter)
			projects.GET("/ends-before-date", h.Project.ListEndBefore)
			projects.GET("/:id/tasks", h.Project.ListTasks)
			projects.POST("", h.Project.Create)
			projects.PUT("/:id", h.Project.Update)
			projects.DELETE("/:id", h.Project.Delete)
		}

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.GET("/:id", h.Task.Get)
			tasks.GET("/name/:name", h.Task.GetByName)
			tasks.GET("/with-status/:status", h.Task.ListWithStatus)
			tasks.GET("/in-priority-range", h.Task.ListInPriorityRange)
			tasks.POST("/create/in-project/:projectId", h.Task.Create)
			tasks.PUT("/update/:taskId", h.Task.Update)
			tasks.DELETE("/:id", h.Task.Delete)
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
