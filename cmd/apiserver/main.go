// API server entry point for taiwan-legal-ai.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/bootstrap"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/postgres"
	httpiface "github.com/Larryveryhandsome/taiwan-legal-ai/internal/interfaces/http"
)

const defaultConfigPath = "configs/config.yaml"

// version is injected via ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply database migrations on startup")
	flag.Parse()

	if err := run(*configPath, *skipMigrate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, skipMigrate bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		return err
	}

	log.Info("starting taiwan-legal-ai API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
		logging.String("search_backend", cfg.Search.Backend),
	)

	if !skipMigrate {
		if err := postgres.Migrate(cfg.Database, log); err != nil {
			return err
		}
	}

	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	var ready atomic.Bool
	router := httpiface.NewRouter(cfg.Server, httpiface.RouterDeps{
		Questions: app.Service,
		Store:     app.Store,
		Feedback:  app.Feedback,
		Metrics:   app.Metrics.Handler(),
		Version:   version,
		Ready:     ready.Load,
		Log:       log,
	})
	srv := httpiface.NewServer(cfg.Server, router, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	ready.Store(true)
	log.Info("HTTP server listening", logging.Int("port", cfg.Server.Port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ready.Store(false)
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// loadConfig falls back to environment-only configuration when the file does
// not exist, so containerized deployments need no mounted config.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "warning: config file %s not found, using environment and defaults\n", path)
		return config.LoadFromEnv()
	}
	return config.Load(path)
}
