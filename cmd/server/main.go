package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"appforge.backend/internal/config"
	"appforge.backend/internal/infrastructure/github"
	"appforge.backend/internal/infrastructure/jobs"
	"appforge.backend/internal/infrastructure/repositories"
	"appforge.backend/internal/interfaces/http/handlers"
	"appforge.backend/internal/interfaces/http/middleware"
	"appforge.backend/internal/usecases"
	"appforge.backend/pkg/crypto"
	"appforge.backend/pkg/logger"
	"appforge.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	vault, err := crypto.NewVault(cfg.Security.MasterKeyB64)
	if err != nil {
		return fmt.Errorf("invalid master key: %w", err)
	}
	hasher, err := crypto.NewKeyHasher(cfg.Security.APIKeyHMACSecretB64)
	if err != nil {
		return fmt.Errorf("invalid api key hmac secret: %w", err)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	devRepo := repositories.NewDeveloperRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	secretRepo := repositories.NewSecretRepository(db)
	accessLogRepo := repositories.NewAccessLogRepository(db)
	buildRepo := repositories.NewBuildRepository(db)
	counterStore := redis.NewCounterStore()

	// Initialize usecases
	banTracker := usecases.NewBanTracker(counterStore, cfg.Ban)
	rateLimiter := usecases.NewRateLimiter(counterStore, cfg.RateLimit)
	authUsecase := usecases.NewAuthUsecase(devRepo, hasher, banTracker)
	devKeyUsecase := usecases.NewDevKeyUsecase(devRepo, accessLogRepo, hasher)
	projectUsecase := usecases.NewProjectUsecase(projectRepo)
	credentialUsecase := usecases.NewCredentialUsecase(secretRepo, accessLogRepo, vault)
	ghClient := github.NewClient(cfg.GitHub.APIBaseURL)
	githubUsecase := usecases.NewGithubUsecase(projectRepo, secretRepo, buildRepo, accessLogRepo, vault, ghClient)

	// Initialize handlers
	devKeyHandler := handlers.NewDevKeyHandler(devKeyUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	credentialHandler := handlers.NewCredentialHandler(credentialUsecase, projectUsecase)
	githubHandler := handlers.NewGithubHandler(githubUsecase)
	logsHandler := handlers.NewLogsHandler(accessLogRepo)
	publicHandler := handlers.NewPublicHandler(projectRepo)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewBuildExpiryJob(buildRepo)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.Origin)
	registerRoutes(r, routeDeps{
		devKeyHandler:     devKeyHandler,
		projectHandler:    projectHandler,
		credentialHandler: credentialHandler,
		githubHandler:     githubHandler,
		logsHandler:       logsHandler,
		publicHandler:     publicHandler,
		banGuard:          middleware.BanGuard(banTracker),
		globalRateLimit:   middleware.GlobalRateLimit(rateLimiter),
		apiKeyAuth:        middleware.APIKeyAuth(authUsecase),
		perKeyRateLimit:   middleware.PerKeyRateLimit(rateLimiter),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	log.Printf("🚀 AppForge Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/v1/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
