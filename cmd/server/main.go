package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftie_sanctuary/internal/api"
	"swiftie_sanctuary/internal/api/middleware"
	"swiftie_sanctuary/internal/app/service"
	"swiftie_sanctuary/internal/app/worker"
	"swiftie_sanctuary/internal/domain/repository"
	"swiftie_sanctuary/internal/domain/session"
	"swiftie_sanctuary/internal/platform/config"
	"swiftie_sanctuary/internal/platform/database"
	"swiftie_sanctuary/internal/platform/redisconn"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Load Configuration
	cfg := config.Load()
	logger.Info("configuration loaded", "env", cfg.Env, "session_store", cfg.SessionStore)

	ctx := context.Background()

	// 2. Initialize Database (runs migrations)
	db, err := database.Connect(ctx, cfg.DBConnStr)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("database connected")

	// 3. Initialize Session Store
	var sessionStore session.Store
	switch cfg.SessionStore {
	case "redis":
		rdb, err := redisconn.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("redis init failed", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		sessionStore = session.NewRedisStore(rdb)
		logger.Info("redis session store connected")
	default:
		sessionStore = session.NewPgStore(db)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	memberRepo := repository.NewPgMemberRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, sessionStore, cfg.SessionTTL)
	memberService := service.NewMemberService(memberRepo)
	userService := service.NewUserService(userRepo)

	// 6. Initialize Session Sweeper (as a goroutine)
	sweeper := worker.NewSessionSweeper(sessionStore, cfg.SessionCleanupInterval, logger)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go sweeper.Start(workerCtx)

	// 7. Initialize Router & HTTP Server
	sessions := middleware.NewSessionMiddleware(sessionStore, logger)
	router := api.NewRouter(cfg, sessions, authService, memberService, userService, logger)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("shutting down server")
	workerCancel() // Signal sweeper to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server and sweeper stopped gracefully")
}
