package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-registry/config"
	"clinic-registry/internal/delivery/function"
	deliveryHttp "clinic-registry/internal/delivery/http"
	"clinic-registry/internal/delivery/http/handler"
	"clinic-registry/internal/delivery/http/middleware"
	"clinic-registry/internal/infrastructure/cache"
	"clinic-registry/internal/infrastructure/database"
	"clinic-registry/internal/repository"
	"clinic-registry/internal/service"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Handler     http.Handler
	Server      *http.Server
}

// Option adjusts how New builds the App.
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput sends logs to w instead of stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// New creates a new App instance with all dependencies initialized
func New(opts ...Option) (*App, error) {
	o := options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{}

	// Setup logger
	setupLogger(o.logOutput)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	if lvl, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", cfg.App.LogLevel)
	}
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Initialize Redis
	publisher, redisClient := newChangePublisher(cfg.Redis)
	app.RedisClient = redisClient

	// Initialize all layers
	app.Handler = initializeHandler(db, sqlDB, publisher)
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      app.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return app, nil
}

// newChangePublisher publishes to Redis when it is configured and reachable.
// Otherwise change events are only logged.
func newChangePublisher(cfg config.RedisConfig) (service.ChangePublisher, *redis.Client) {
	if !cfg.Enabled() {
		logrus.Info("Redis not configured, change events are only logged")
		return service.NewNoopChangePublisher(), nil
	}

	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		logrus.Warnf("Redis unavailable, change events are only logged: %v", err)
		return service.NewNoopChangePublisher(), nil
	}

	return service.NewRedisChangePublisher(client, cfg.Channel), client
}

// setupLogger configures the logrus logger
func setupLogger(w io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeHandler wires repositories, usecases and handlers into the router.
func initializeHandler(db *gorm.DB, sqlDB *sql.DB, publisher service.ChangePublisher) http.Handler {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	transactor := database.NewTransactor(db)
	auditService := service.NewAuditService(log, publisher)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	departmentRepo := repository.NewDepartmentRepository()
	specializationRepo := repository.NewSpecializationRepository()
	serviceRepo := repository.NewServiceRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	statsRepo := repository.NewStatsRepository()
	cascadeRepo := repository.NewCascadeRepository()

	// Initialize usecases
	statsUsecase := usecase.NewStatsUsecase(transactor, log, statsRepo)
	patientUsecase := usecase.NewPatientUsecase(transactor, log, patientRepo, cascadeRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(transactor, log, appointmentRepo, cascadeRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(transactor, log, doctorRepo, cascadeRepo, auditService)
	departmentUsecase := usecase.NewDepartmentUsecase(transactor, log, departmentRepo, cascadeRepo, auditService)
	specializationUsecase := usecase.NewSpecializationUsecase(transactor, log, specializationRepo)
	serviceUsecase := usecase.NewServiceUsecase(transactor, log, serviceRepo, cascadeRepo, auditService)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(transactor, log, diagnosisRepo, cascadeRepo, auditService)
	recordUsecase := usecase.NewMedicalRecordUsecase(transactor, log, recordRepo, cascadeRepo, auditService)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Stats:          handler.NewStatsHandler(statsUsecase),
		Patient:        handler.NewPatientHandler(patientUsecase, customValidator),
		Appointment:    handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Doctor:         handler.NewDoctorHandler(doctorUsecase, customValidator),
		Department:     handler.NewDepartmentHandler(departmentUsecase, customValidator),
		Specialization: handler.NewSpecializationHandler(specializationUsecase),
		Service:        handler.NewServiceHandler(serviceUsecase, customValidator),
		Diagnosis:      handler.NewDiagnosisHandler(diagnosisUsecase, customValidator),
		MedicalRecord:  handler.NewMedicalRecordHandler(recordUsecase, customValidator),
	}

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, sqlDB, log, corsMiddleware, loggingMiddleware)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// Invoke serves a single function event with the same handler as the server.
func (app *App) Invoke(ctx context.Context, event function.Event) (*function.Envelope, error) {
	return function.NewAdapter(app.Handler, logrus.StandardLogger()).Invoke(ctx, event)
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
