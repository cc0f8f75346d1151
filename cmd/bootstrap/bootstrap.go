package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/afiagithub/VitalCare-server/config"
	deliveryHttp "github.com/afiagithub/VitalCare-server/internal/delivery/http"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/handler"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/middleware"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/cache"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/database"
	"github.com/afiagithub/VitalCare-server/internal/repository"
	"github.com/afiagithub/VitalCare-server/internal/service"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/jwt"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	MongoClient *mongo.Client
	DB          *mongo.Database
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	client, db, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.MongoClient = client
	app.DB = db
	logrus.Info("Database connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// The lookup cache degrades to direct reads without redis, so a
	// connection failure only loses the cache, not the service.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, lookup caching disabled: %v", err)
		redisClient = nil
	} else {
		logrus.Info("Redis connected successfully")
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, client, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, client *mongo.Client, db *mongo.Database, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	testRepo := repository.NewTestRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	reportRepo := repository.NewReportRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	contentRepo := repository.NewContentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	if redisClient != nil {
		lookupRepo = service.NewCachedLookupRepository(redisClient, lookupRepo, log)
	}

	transactor := database.NewTransactor(client)
	paymentService := service.NewStripePaymentService(cfg.Stripe, log)

	// Usecases
	userUsecase := usecase.NewUserUsecase(log, userRepo)
	testUsecase := usecase.NewTestUsecase(log, testRepo)
	reservationUsecase := usecase.NewReservationUsecase(log, transactor, reservationRepo, testRepo)
	reportUsecase := usecase.NewReportUsecase(log, reportRepo)
	bannerUsecase := usecase.NewBannerUsecase(log, transactor, bannerRepo)
	contentUsecase := usecase.NewContentUsecase(log, lookupRepo, contentRepo)
	paymentUsecase := usecase.NewPaymentUsecase(log, paymentService)
	statsUsecase := usecase.NewStatsUsecase(log, statsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(jwtService, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	testHandler := handler.NewTestHandler(testUsecase, customValidator)
	reservationHandler := handler.NewReservationHandler(reservationUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	bannerHandler := handler.NewBannerHandler(bannerUsecase, customValidator)
	contentHandler := handler.NewContentHandler(contentUsecase)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	adminMiddleware := middleware.NewAdminMiddleware(userUsecase)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)

	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		testHandler,
		reservationHandler,
		reportHandler,
		bannerHandler,
		contentHandler,
		paymentHandler,
		statsHandler,
		authMiddleware,
		adminMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.MongoClient.Disconnect(ctx)
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
