package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cashflow-service/internal/api_gateway"
	"github.com/cashflow-service/internal/api_gateway/service"
	"github.com/cashflow-service/internal/archiver"
	"github.com/cashflow-service/internal/config"
	"github.com/cashflow-service/internal/data/mongo"
	"github.com/cashflow-service/internal/data/postgres"
	"github.com/cashflow-service/internal/logger"
	"github.com/cashflow-service/internal/platform/gateways"
	"github.com/cashflow-service/internal/platform/messaging/producers"
	"github.com/cashflow-service/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("cashflow_service")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize databases with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	// Initialize Kafka producer for manual-entry audit events
	kafkaProducer, err := producers.NewEntryEventProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize Kafka producer", "error", err)
		os.Exit(1)
	}

	// Initialize repositories and upstream clients
	entryRepo := postgres.NewEntryRepository(log, postgresDB)
	archiveRepo := mongo.NewReportArchiveRepository(log, mongoDB.Database())
	payableClient := gateways.NewPayableClient(log, &cfg.Upstream)
	receivableClient := gateways.NewReceivableClient(log, &cfg.Upstream)

	// Initialize the background report archiver
	reportArchiver, err := archiver.NewReportArchiver(log, archiveRepo, &cfg.Archiver)
	if err != nil {
		log.Error("Failed to initialize report archiver", "error", err)
		os.Exit(1)
	}

	// Initialize services
	entryService := service.NewEntryService(log, entryRepo, kafkaProducer)
	cashFlowService := service.NewCashFlowService(log, entryRepo, payableClient, receivableClient, archiveRepo, reportArchiver)

	// Initialize REST server
	server := api_gateway.NewServer(log, cfg, entryService, cashFlowService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first so no new reports are generated
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Drain the archive pool before closing its backing store
	reportArchiver.Shutdown()

	postgresDB.Close()

	if err = kafkaProducer.Close(); err != nil {
		log.Error("Error closing Kafka producer", "error", err)
	}

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
