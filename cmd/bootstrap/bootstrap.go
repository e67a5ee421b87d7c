package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"doctor-verification/config"
	deliveryHttp "doctor-verification/internal/delivery/http"
	"doctor-verification/internal/delivery/http/handler"
	"doctor-verification/internal/delivery/http/middleware"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/infrastructure/cache"
	"doctor-verification/internal/infrastructure/database"
	"doctor-verification/internal/metrics"
	"doctor-verification/internal/repository"
	"doctor-verification/internal/service"
	"doctor-verification/internal/usecase"
	"doctor-verification/pkg/jwt"
	"doctor-verification/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize all layers
	app.Server = app.initializeServer()

	return app, nil
}

// Connect opens the database and Redis connections without building the HTTP layer
func Connect(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Log:    NewLogger(cfg.Log),
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	return app, nil
}

// NewLogger configures the shared logrus logger
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(cfg.Level)
	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg, db, log := app.Config, app.DB, app.Log

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	documentRepo := repository.NewVerificationDocumentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	statsService := service.NewVerificationStatsService(app.RedisClient, log, func(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
		return doctorProfileRepo.CountByStatus(ctx, db)
	}, cfg.Stats.CacheTTL)
	if _, err := statsService.SyncFromDatabase(context.Background()); err != nil {
		log.Warnf("Failed to warm verification counts: %+v", err)
	}

	// Initialize usecases
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, transactor, doctorProfileRepo, auditService, statsService)
	verificationUsecase := usecase.NewVerificationUsecase(db, log, transactor, doctorProfileRepo, documentRepo, auditService, statsService, appMetrics)
	documentReviewUsecase := usecase.NewDocumentReviewUsecase(log, transactor, doctorProfileRepo, documentRepo, auditService, appMetrics)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	verificationHandler := handler.NewVerificationHandler(verificationUsecase, documentReviewUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)
	metricsMiddleware := middleware.NewMetricsMiddleware(appMetrics)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, verificationHandler, auditLogHandler, authMiddleware, corsMiddleware, metricsMiddleware, registry)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
