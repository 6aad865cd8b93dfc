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

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/stpaul_crime_api/internal/config"
	v1 "github.com/shenikar/stpaul_crime_api/internal/handler/http/v1"
	"github.com/shenikar/stpaul_crime_api/internal/repository"
	"github.com/shenikar/stpaul_crime_api/internal/service"
	"github.com/shenikar/stpaul_crime_api/internal/webhook"
	"github.com/shenikar/stpaul_crime_api/pkg/logger"
	"github.com/shenikar/stpaul_crime_api/pkg/postgres"
	redisclient "github.com/shenikar/stpaul_crime_api/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/stpaul_crime_api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title St. Paul Crime API
// @version 1.0
// @description Read/write API over St. Paul crime incidents, incident codes and neighborhoods.
// @host localhost:8000
// @BasePath /

// runMigrations применяет миграции из MIGRATIONS_PATH.
// Если путь не задан, схемой управляют снаружи и шаг пропускается.
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	if cfg.MigrationsPath == "" {
		log.Info("MIGRATIONS_PATH is not set, skipping database migrations")
		return nil
	}
	log.WithField("path", cfg.MigrationsPath).Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(migrationURL, prefix) {
			migrationURL = "pgx5://" + strings.TrimPrefix(migrationURL, prefix)
			break
		}
	}

	m, err := migrate.New("file://"+cfg.MigrationsPath, migrationURL)
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

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, os.Stdout)

	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки об изменениях инцидентов
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool)
	catalogRepo := repository.NewCatalogRepository(dbpool, redisClient, cfg.CacheTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, webhookPublisher)
	catalogService := service.NewCatalogService(catalogRepo, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, catalogService, log, cfg)

	// Настройка Gin роутера
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestIDMiddleware(), v1.AccessLogMiddleware(log))
	handler.RegisterRoutes(router.Group(""))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server gracefully stopped")
}
