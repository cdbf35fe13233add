package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/bootstrap"
)

// NewAskCmd answers a single question from the command line, using the same
// pipeline as the API server.
func NewAskCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a legal question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			app, err := bootstrap.New(ctx, cc.Config, cc.Logger)
			if err != nil {
				return err
			}
			defer app.Close()

			question := strings.Join(args, " ")
			resp, err := app.Service.Ask(ctx, question)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full response as JSON")
	return cmd
}
