package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/amqp"
	"github.com/dafibh/fintrack/fintrack-backend/internal/config"
	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/handler"
	"github.com/dafibh/fintrack/fintrack-backend/internal/middleware"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository/file"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository/postgres"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository/sqlite"
	"github.com/dafibh/fintrack/fintrack-backend/internal/repository/storage"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title FinTrack API
// @version 1.0
// @description Personal finance ledger: accounts, transactions, category budgets and bill reminders.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}

	store := newStateStore(cfg.Store)
	log.Info().Str("driver", cfg.Store.Driver).Msg("State store selected")

	// Event fan-out: websocket clients always, RabbitMQ when configured
	hub := websocket.NewHub()
	publishers := websocket.MultiPublisher{hub}
	var amqpPublisher *amqp.Publisher
	if cfg.AMQP.Enabled() {
		amqpPublisher, err = amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to AMQP broker")
		}
		publishers = append(publishers, amqpPublisher)
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Publishing ledger events to AMQP")
	}

	// Initialize the ledger
	ledger := service.NewLedger(service.LedgerConfig{
		DefaultMonthlyBudget: cfg.DefaultMonthlyBudget,
		DefaultMonthStartDay: cfg.DefaultMonthStartDay,
		Location:             loc,
		WidgetPrivacy:        cfg.WidgetPrivacy,
	})
	ledger.SetEventPublisher(publishers)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	ledger.Load(loadCtx, store)
	cancelLoad()

	saver := service.NewStateSaver(store, log.Logger, service.DefaultStateSaverConfig())
	saver.Start()
	ledger.SetStateSaver(saver)

	// Initialize services
	accountService := service.NewAccountService(ledger)
	transactionService := service.NewTransactionService(ledger)
	categoryService := service.NewCategoryService(ledger)
	budgetService := service.NewBudgetService(ledger)
	reminderService := service.NewReminderService(ledger)
	dashboardService := service.NewDashboardService(ledger)
	dataService := service.NewDataService(ledger)

	if cfg.S3.Enabled() {
		backups, err := storage.NewS3BackupRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 backup storage")
		}
		dataService.SetBackupStore(backups)
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("S3 backups enabled")
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Account:     handler.NewAccountHandler(accountService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Category:    handler.NewCategoryHandler(categoryService),
		Budget:      handler.NewBudgetHandler(budgetService),
		Reminder:    handler.NewReminderHandler(reminderService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Data:        handler.NewDataHandler(dataService),
		WebSocket:   handler.NewWebSocketHandler(hub, dashboardService, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"store":   cfg.Store.Driver,
			"clients": hub.ClientCount(),
			"backups": dataService.BackupsEnabled(),
		})
	})

	// Register API routes
	handler.RegisterRoutes(e, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	rateLimiter.Stop()
	hub.CloseAll()

	// Pending saves are flushed before the store goes away
	if err := saver.Close(ctx); err != nil {
		log.Error().Err(err).Msg("State saver did not drain")
	}
	if amqpPublisher != nil {
		if err := amqpPublisher.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close AMQP publisher")
		}
	}
	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close state store")
		}
	}

	log.Info().Msg("Server exited")
}

// newStateStore returns the store for the configured driver. Database stores
// connect lazily on first load or save.
func newStateStore(cfg config.StoreConfig) domain.StateStore {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		return sqlite.NewStateStore(cfg.SQLitePath)
	case config.StoreDriverPostgres:
		return postgres.NewStateStore(cfg.DatabaseURL)
	case config.StoreDriverMemory:
		return repository.NewMemoryStore()
	default:
		return file.NewStateStore(cfg.StateFile)
	}
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
