package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swaggo/swag"

	_ "github.com/DanielPopoola/mollie-acquirer/docs"
	"github.com/DanielPopoola/mollie-acquirer/internal/api"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/mollie"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/mollie-acquirer/internal/worker"
)

// @title        Mollie Acquirer API
// @version      1.0
// @description  Mollie checkout, method catalog and transaction status endpoints.
// @BasePath     /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting acquirer service",
		"port", cfg.Server.Port,
		"mollie_environment", cfg.Mollie.Environment,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mollieClient, err := mollie.NewClient(cfg.Mollie)
	if err != nil {
		logger.Error("failed to build mollie client", "error", err)
		os.Exit(1)
	}
	gateway := mollie.NewRetryClient(mollieClient, cfg.Retry)
	images := mollie.NewImageFetcher(cfg.Mollie.ConnTimeout)

	urls, err := services.NewURLBuilder(cfg.Shop)
	if err != nil {
		logger.Error("invalid shop configuration", "error", err)
		os.Exit(1)
	}

	methodRepo := postgres.NewMethodRepository(db)
	issuerRepo := postgres.NewIssuerRepository(db)
	iconStore := postgres.NewIconStore(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)

	checkoutService := services.NewCheckoutService(
		transactionRepo,
		documentRepo,
		methodRepo,
		gateway,
		services.NewPayloadBuilder(urls),
		urls,
		db,
		logger,
	)
	syncService := services.NewMethodSyncService(gateway, methodRepo, issuerRepo, iconStore, images, db, logger)
	queryService := services.NewMethodQueryService(methodRepo, transactionRepo, documentRepo)
	statusService := services.NewStatusService(transactionRepo, gateway, logger)

	h := handlers.NewHandlers(checkoutService, syncService, queryService, statusService, logger)

	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load api spec", "error", err)
		os.Exit(1)
	}
	validateRequests, err := middleware.RequestValidator(doc)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux, func() string {
		swaggerJSON, err := swag.ReadDoc()
		if err != nil {
			logger.Error("failed to render swagger doc", "error", err)
		}
		return swaggerJSON
	})
	h.RegisterRoutes(mux)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	handler := validateRequests(mux)
	handler = limiter.Middleware(handler)
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go limiter.Cleanup(workerCtx)

	if cfg.Worker.Enabled {
		syncWorker := worker.NewMethodSyncWorker(syncService, cfg.Worker.SyncInterval, logger)
		go syncWorker.Start(workerCtx)
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
