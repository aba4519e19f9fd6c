package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	consoleadapter "github.com/mmgen/minutes-console/internal/adapters/console"
	"github.com/mmgen/minutes-console/internal/config"
	"github.com/mmgen/minutes-console/internal/core/ports"
	"github.com/mmgen/minutes-console/internal/core/usecase"
	"github.com/mmgen/minutes-console/internal/infrastructure/backend"
	"github.com/mmgen/minutes-console/internal/infrastructure/clipboard"
	"github.com/mmgen/minutes-console/internal/infrastructure/export"
	"github.com/mmgen/minutes-console/internal/infrastructure/progress"
	"github.com/mmgen/minutes-console/internal/infrastructure/resilience"
	"github.com/mmgen/minutes-console/internal/observability/logging"
	"github.com/mmgen/minutes-console/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Session ports.SessionController
	Loop    *consoleadapter.Loop

	closeFn func()
}

func New(cfg config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, "minutes-console", cfg.LogLevel)

	clientMetrics := metrics.NewClientMetrics("minutes-console")
	metricsServer := startMetricsServer(cfg.MetricsPort, clientMetrics, logger)

	executor := resilience.NewExecutor(resilience.Config{
		BreakerEnabled: cfg.BreakerEnabled,
	})
	apiClient := backend.New(backend.Config{
		BaseURL:        cfg.BackendURL,
		RequestTimeout: cfg.RequestTimeout,
		UploadTimeout:  cfg.UploadTimeout,
	}, executor, clientMetrics, logger)

	exporter, err := export.New(cfg.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("init exporter: %w", err)
	}

	view := consoleadapter.NewView(os.Stdout)
	session := usecase.NewSession(
		apiClient,
		view,
		clipboard.New(),
		exporter,
		progress.NewRunner(),
		logger,
		usecase.Config{PollInterval: cfg.PollInterval},
	)
	loop := consoleadapter.NewLoop(session, os.Stdin, os.Stdout)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Session: session,
		Loop:    loop,

		closeFn: func() {
			session.Close()
			if metricsServer != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = metricsServer.Shutdown(shutdownCtx)
			}
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

func startMetricsServer(port string, clientMetrics *metrics.ClientMetrics, logger *slog.Logger) *http.Server {
	if port == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", clientMetrics.Handler())
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("metrics_listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics_server_error", "error", err)
		}
	}()
	return server
}
