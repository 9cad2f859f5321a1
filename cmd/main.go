package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/anythingai/SF-Garbage-Reporter/internal/config"
	"github.com/anythingai/SF-Garbage-Reporter/internal/dedup"
	v1 "github.com/anythingai/SF-Garbage-Reporter/internal/handler/http/v1"
	"github.com/anythingai/SF-Garbage-Reporter/internal/mailer"
	"github.com/anythingai/SF-Garbage-Reporter/internal/service"
	"github.com/anythingai/SF-Garbage-Reporter/pkg/logger"
	redisclient "github.com/anythingai/SF-Garbage-Reporter/pkg/redis"
)

// @title SF Garbage Reporter API
// @version 1.0
// @description Intake API for geolocated garbage reports relayed by email to city operations.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ResendAPIKey == "" {
		log.Warn("RESEND_API_KEY is not set: every dispatch will fail until it is configured")
	}

	// Выбор стора дедупликации: per-process память по умолчанию,
	// Redis для развертывания в несколько инстансов
	var dedupStore service.DedupStore
	switch cfg.DedupBackend {
	case "redis":
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		dedupStore = dedup.NewRedisStore(redisClient, cfg.DedupWindow)
	default:
		// Записи живут только в этом процессе - за несколькими
		// инстансами повторы подавляются не полностью
		dedupStore = dedup.NewMemoryStore(cfg.DedupWindow)
	}

	// Инициализация почтового транспорта
	reportMailer := mailer.NewResendMailer(cfg, log)

	// Инициализация сервисов
	reportService := service.NewReportService(dedupStore, reportMailer, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
