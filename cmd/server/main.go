package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"songvault/internal/api"
	"songvault/internal/app/service"
	"songvault/internal/common/security"
	"songvault/internal/domain/repository"
	"songvault/internal/platform/cache"
	"songvault/internal/platform/config"
	"songvault/internal/platform/database"
	"songvault/internal/platform/logger"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.Load()

	// 2. Initialize Logger
	if err := logger.Init(config.AppConfig.LogLevel, config.AppConfig.LogFormat); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize JWT
	security.InitJWT()

	// 4. Initialize Database
	database.Connect()
	defer database.Close()
	logger.L().Info("Database connected")

	// 5. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	logger.L().Info("Redis connected")

	// 6. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	songRepo := repository.NewPgSongRepository(database.DB)

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo)
	songListCache := cache.NewSongListCache(cache.RDB, config.AppConfig.SongListCacheTTL)
	songService := service.NewSongService(songRepo, songListCache)

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, songService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.L().Info("Server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("Could not listen", zap.String("port", config.AppConfig.APIPort), zap.Error(err))
		}
	}()

	<-stop // Wait for interrupt signal

	logger.L().Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal("Server shutdown failed", zap.Error(err))
	}

	logger.L().Info("Server stopped gracefully")
}
