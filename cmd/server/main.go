package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tarefas_api/internal/api"
	"tarefas_api/internal/app/service"
	"tarefas_api/internal/common/security"
	"tarefas_api/internal/domain/repository"
	"tarefas_api/internal/platform/cache"
	"tarefas_api/internal/platform/config"
	"tarefas_api/internal/platform/database"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Load Configuration
	cfg := config.Load()
	logger.Info().Str("driver", cfg.DBDriver).Msg("configuration loaded")

	// 2. Initialize Token Service
	tokens := security.NewTokenService(cfg.JWTKey, cfg.JWTExp)

	// 3. Initialize Storage (profile selected by DB_DRIVER)
	var userRepo repository.UserRepository
	var taskRepo repository.TaskRepository

	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not connect to postgres")
		}
		defer db.Close()
		userRepo = repository.NewPgUserRepository(db)
		taskRepo = repository.NewPgTaskRepository(db)
	case config.DriverSQLite:
		db, err := database.ConnectSQLite(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not open sqlite database")
		}
		userRepo = repository.NewSQLiteUserRepository(db)
		taskRepo = repository.NewSQLiteTaskRepository(db)
	default:
		logger.Fatal().Str("driver", cfg.DBDriver).Msg("unknown DB_DRIVER")
	}
	logger.Info().Msg("database connected")

	// 4. Initialize optional Redis cache
	var taskCache *cache.Cache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not connect to redis")
		}
		defer client.Close()
		taskCache = cache.New(client, "tarefas:", 5*time.Minute)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("redis cache enabled")
	}

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, tokens)
	taskService := service.NewTaskService(taskRepo, taskCache, logger)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(authService, taskService, tokens, logger)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info().Str("port", cfg.APIPort).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	logger.Info().Msg("server stopped gracefully")
}
