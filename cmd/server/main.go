package main

import (
	"log"
	"os"

	"github.com/smartdash/dashboard-api/internal/api"
	"github.com/smartdash/dashboard-api/internal/config"
	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/scheduler"
	"github.com/smartdash/dashboard-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; environment variables override file config
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Auth.Secret == "" {
		log.Fatal("JWT secret is not configured (set auth.secret or JWT_SECRET)")
	}

	// Initialize database
	if err := database.InitDB(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully")

	// Initialize services
	authService := services.NewAuthService(&cfg.Auth)
	activityService := services.NewActivityService()
	statsService := services.NewStatsService()
	seedService := services.NewSeedService(authService)

	// Initialize scheduler for revoked-token cleanup
	sched := scheduler.NewScheduler(authService)
	if err := sched.Start(cfg.Auth.PurgeInterval); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Setup Gin
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Enable CORS for the dashboard frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Setup API routes
	handler := api.NewHandler(authService, activityService, statsService, seedService)
	api.SetupRoutes(r, handler)

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
