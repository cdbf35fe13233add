// Package cli implements the legalai command-line interface: offline index
// builds, one-shot questions, corpus search and the API server itself.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
}

// cliContext carries initialized dependencies through the command tree.
type cliContext struct {
	Config *config.Config
	Logger logging.Logger
	// ConfigPath is empty when configuration came from the environment only.
	ConfigPath string
}

type cliContextKey struct{}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "legalai",
		Short:   "legalai — Taiwan legal question answering over laws and court cases",
		Long:    "legalai answers free-text Chinese legal questions by analyzing the\nquestion, retrieving relevant statutes and precedents, and composing a\ntemplated advisory answer.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./configs/config.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		NewServeCmd(),
		NewIndexCmd(),
		NewAskCmd(),
		NewSearchCmd(),
		NewMigrateCmd(),
	)

	return cmd
}

// persistentPreRun loads configuration, builds a CLI logger and stores both
// on the command context for subcommands.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, path, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	log, err := initLogger(opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), cliContextKey{},
		&cliContext{Config: cfg, Logger: log, ConfigPath: path})
	cmd.SetContext(ctx)
	return nil
}

// getCLIContext extracts the initialized dependencies from the command context.
func getCLIContext(cmd *cobra.Command) (*cliContext, error) {
	cc, ok := cmd.Context().Value(cliContextKey{}).(*cliContext)
	if !ok || cc == nil {
		return nil, fmt.Errorf("cli context not initialized")
	}
	return cc, nil
}

// initConfig loads configuration from the --config flag, a default search
// path, or the environment alone when no file exists.  The returned path is
// the file actually used, empty for environment-only configuration.
func initConfig(opts *RootOptions) (*config.Config, string, error) {
	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		return cfg, opts.ConfigPath, err
	}
	for _, p := range []string{"configs/config.yaml", "config.yaml"} {
		if _, err := os.Stat(p); err == nil {
			cfg, err := config.Load(p)
			return cfg, p, err
		}
	}
	cfg, err := config.LoadFromEnv()
	return cfg, "", err
}

// initLogger creates a logger configured for CLI usage: console format on
// stderr so stdout stays reserved for command output.
func initLogger(opts *RootOptions) (logging.Logger, error) {
	level := strings.ToLower(opts.LogLevel)
	if opts.Verbose {
		level = "debug"
	}
	return logging.NewLogger(logging.LogConfig{
		Level:            level,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
