package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "github.com/Pagajob/easyold-sub001/internal/api/http"
	"github.com/Pagajob/easyold-sub001/internal/config"
	"github.com/Pagajob/easyold-sub001/internal/contract"
	"github.com/Pagajob/easyold-sub001/internal/jobs"
	"github.com/Pagajob/easyold-sub001/internal/logger"
	"github.com/Pagajob/easyold-sub001/internal/repository/postgres"
	"github.com/Pagajob/easyold-sub001/internal/scheduler"
	"github.com/Pagajob/easyold-sub001/internal/security"
	"github.com/Pagajob/easyold-sub001/internal/service"
	"github.com/Pagajob/easyold-sub001/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	devToken := flag.Bool("dev-token", false, "Print a development access token and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	if *devToken {
		token, err := tokenManager.GenerateAccessToken(1, "dev@localhost")
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		fmt.Println(token)
		return
	}

	logger.Info("Starting fleet rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Storage Backend
	var backend storage.Backend
	var localBackend *storage.LocalBackend
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localBackend, err = storage.NewLocalBackend(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		backend = localBackend
	case "gcs":
		logger.Info("Using GCS storage", "bucket", cfg.Storage.Bucket)
		gcsBackend, err := storage.NewGCSBackend(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize GCS storage", "error", err)
			log.Fatalf("Failed to initialize GCS storage: %v", err)
		}
		backend = gcsBackend
	default:
		log.Fatalf("Unsupported storage type: %s", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	renderer, err := contract.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to initialize contract renderer: %v", err)
	}
	contractSvc := service.NewContractService(
		store.ReservationRepository,
		store.ClientRepository,
		store.VehicleRepository,
		store.CompanyRepository,
		store.FeePolicyRepository,
		renderer,
		backend,
		emailSvc,
	)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.ClientRepository,
		contractSvc,
	)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	clientSvc := service.NewClientService(store.ClientRepository)
	settingsSvc := service.NewSettingsService(store.FeePolicyRepository, store.CompanyRepository)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Email: emailSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	mediaHandler := httpapi.NewMediaHandler(backend, localBackend)
	handlers := httpapi.NewHandlers(vehicleSvc, clientSvc, reservationSvc, contractSvc, settingsSvc, mediaHandler)
	router := httpapi.NewRouter(handlers, tokenManager, localBackend != nil)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
