package cli

import (
	"github.com/spf13/cobra"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/postgres"
)

// NewMigrateCmd applies pending database migrations and exits.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			return postgres.Migrate(cc.Config.Database, cc.Logger)
		},
	}
}
