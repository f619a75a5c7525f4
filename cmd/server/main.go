package main

import (
	"StuffKeeper/internal/config"
	"StuffKeeper/internal/handlers"
	"StuffKeeper/internal/identity"
	"StuffKeeper/internal/middleware"
	"StuffKeeper/internal/repo"
	"StuffKeeper/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap: в production: JSON, иначе: человекочитаемый
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Debugw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	clk := clock.New()
	resolver := identity.NewResolver(newIdentitySource(cfg, sugar), identity.NewTTLCache(clk), clk, sugar)

	userRepo := repo.NewUserRepository(gormDB)
	stuffRepo := repo.NewStuffRepository(gormDB)
	userService := service.NewUserService(userRepo, resolver, clk)
	stuffService := service.NewStuffService(stuffRepo, userRepo, resolver, clk)

	h := handlers.NewHandler(userService, stuffService, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"environment", cfg.Environment,
		"identity", cfg.IdentityMode,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
		}
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newIdentitySource(cfg *config.Config, sugar *zap.SugaredLogger) identity.Source {
	if cfg.IdentityMode == config.IdentityUserInfo {
		if cfg.UserInfoURL == "" {
			sugar.Fatalw("USERINFO_URL is required for IDENTITY_MODE=userinfo")
		}
		return identity.NewUserInfoSource(cfg.UserInfoURL, nil)
	}
	return identity.NewClaimsSource()
}
