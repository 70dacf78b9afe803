package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"SessionGuard/internal/config"
	"SessionGuard/internal/handlers"
	"SessionGuard/internal/middleware"

	"go.uber.org/zap"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	h, err := handlers.NewHandler(cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to build handlers", "error", err)
	}

	addr := cfg.BaseURL
	srv := &http.Server{
		Addr:         addr,
		Handler:      h.Router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"BackendURL", cfg.BackendURL,
		"LoginPath", cfg.LoginPath,
		"PublicPaths", cfg.PublicPaths,
		"CookieSecure", cfg.CookieSecure,
	)
	sugar.Infow("Starting server", "addr", addr)

	go func() {
		<-ctx.Done()
		shCtx, shCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shCancel()
		if err := srv.Shutdown(shCtx); err != nil {
			sugar.Errorw("Shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
}
