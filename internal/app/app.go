package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"oracle_predict/internal/config"
	"oracle_predict/internal/logger"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) initLogger() {
	logger.Init(&logger.Options{
		Level:      s.ServiceProvider.LoggerCfg().Level(),
		TimeFormat: time.RFC3339,
	})
}

// Run поднимает HTTP сервер и ждет SIGINT/SIGTERM
func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		slog.Warn("Load .env file failed", "err", err)
	}
	s.initServiceProvider()
	s.initLogger()

	ctx := context.Background()
	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
