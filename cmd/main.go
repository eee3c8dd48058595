package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/geo_checkin/internal/config"
	v1 "github.com/shenikar/geo_checkin/internal/handler/http/v1"
	"github.com/shenikar/geo_checkin/internal/metrics"
	"github.com/shenikar/geo_checkin/internal/repository"
	"github.com/shenikar/geo_checkin/internal/service"
	"github.com/shenikar/geo_checkin/internal/webhook"
	"github.com/shenikar/geo_checkin/pkg/logger"
	"github.com/shenikar/geo_checkin/pkg/postgres"
	redisclient "github.com/shenikar/geo_checkin/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geo_checkin/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geo Check-in API
// @version 1.0
// @description Location check-ins with a per-user cooldown and discovery of users nearby.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider JWT.
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// seedUsers загружает профили в хранилище в памяти; пустой путь - без профилей
func seedUsers(store *repository.MemoryStore, path string, log *logrus.Logger) error {
	if path == "" {
		log.Warn("SEED_USERS_FILE is not set: nearby results will have empty display names")
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed users file: %w", err)
	}
	defer f.Close()

	n, err := store.SeedUsers(f)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	log.WithField("count", n).Info("Seeded user profiles")
	return nil
}

// newStorage выбирает хранилище по STORAGE_DRIVER и возвращает функцию его закрытия
func newStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.CheckInRepository, service.LocationRepository, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage: data is lost on restart")
		store := repository.NewMemoryStore()
		if err := seedUsers(store, cfg.SeedUsersFile, log); err != nil {
			return nil, nil, nil, err
		}
		return store, store, func() {}, nil
	}

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, nil, err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	return repository.NewCheckInRepository(dbpool), repository.NewLocationRepository(dbpool), dbpool.Close, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checkInRepo, locationRepo, closeStorage, err := newStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStorage()

	userMiddleware := []gin.HandlerFunc{v1.JWTAuthMiddleware(cfg, log)}
	adminMiddleware := []gin.HandlerFunc{v1.APIKeyAuthMiddleware(cfg, log)}

	// Redis нужен для вебхуков и лимитов; в режиме memory без него можно работать
	var webhookPublisher webhook.WebhookPublisher
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	switch {
	case err != nil && cfg.StorageDriver != config.StorageDriverMemory:
		log.Fatalf("Failed to connect to Redis: %v", err)
	case err != nil:
		log.WithError(err).Warn("Redis unavailable: webhooks and rate limiting are disabled")
	default:
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		// Инициализация издателя вебхуков
		webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)

		userMiddleware = append(userMiddleware, v1.RateLimitMiddleware(redisclient.NewCounter(redisClient), cfg, log))
	}

	// Инициализация сервисов
	checkInService := service.NewCheckInService(checkInRepo, log, cfg, webhookPublisher)
	proximityService := service.NewProximityService(locationRepo, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(checkInService, proximityService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, userMiddleware, adminMiddleware)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков до закрытия соединений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
