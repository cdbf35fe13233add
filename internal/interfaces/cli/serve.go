package cli

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/bootstrap"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/postgres"
	httpiface "github.com/Larryveryhandsome/taiwan-legal-ai/internal/interfaces/http"
)

// NewServeCmd runs the HTTP API server until interrupted.
func NewServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the question-answering API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cc, skipMigrate)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply database migrations on startup")
	return cmd
}

func runServe(parent context.Context, cc *cliContext, skipMigrate bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log := cc.Config, cc.Logger

	if !skipMigrate {
		if err := postgres.Migrate(cfg.Database, log); err != nil {
			return err
		}
	}

	if cc.ConfigPath != "" {
		err := config.Watch(cc.ConfigPath, func(_ *config.Config) {
			log.Info("configuration file changed; connection and routing settings apply on restart",
				logging.String("path", cc.ConfigPath))
		}, func(err error) {
			log.Warn("configuration reload failed", logging.Err(err))
		})
		if err != nil {
			log.Warn("configuration watch unavailable", logging.Err(err))
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
		Version:   Version,
		Ready:     ready.Load,
		Log:       log,
	})
	srv := httpiface.NewServer(cfg.Server, router, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	ready.Store(true)

	log.Info("server started", logging.Int("port", cfg.Server.Port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ready.Store(false)
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
