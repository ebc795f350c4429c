package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "github.com/rubentalstra/BAK/internal/api/http"
	"github.com/rubentalstra/BAK/internal/config"
	"github.com/rubentalstra/BAK/internal/identity"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository/postgres"
	"github.com/rubentalstra/BAK/internal/security"
	"github.com/rubentalstra/BAK/internal/service"
	"github.com/rubentalstra/BAK/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting BAK Tracker backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Identity Service
	identitySvc, err := identity.NewFirebaseService(context.Background(), cfg.Auth.ProjectID, cfg.Auth.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize identity service", "error", err)
		log.Fatalf("Failed to initialize identity service: %v", err)
	}
	logger.Info("Identity service initialized", "project_id", cfg.Auth.ProjectID)

	// Initialize Storage Service
	storageSvc, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("No SendGrid API key configured, deletion emails disabled")
	}

	// Webhook token verification is only enforced when a secret is set
	var webhookTokens security.TokenManager
	if cfg.Webhook.Secret != "" {
		webhookTokens = security.NewTokenManager(cfg.Webhook.Secret)
	} else {
		logger.Warn("No webhook secret configured, webhook endpoint is unauthenticated")
	}

	// Initialize Services
	accountSvc := service.NewAccountService(store.UserRepository, identitySvc, storageSvc, emailSvc)
	reqSvc := service.NewAssociationRequestService(
		store.AssociationRequestRepository,
		store.AssociationRepository,
		store.NotificationRepository,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := api.NewRouter(accountSvc, reqSvc, noteSvc, identitySvc, storageSvc, webhookTokens)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
