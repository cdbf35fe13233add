package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/search"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/bootstrap"
)

// NewSearchCmd analyzes a question and prints the retrieved laws and court
// cases with their similarity scores, without composing an answer.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <question>",
		Short: "Retrieve and rank relevant laws and cases for a question",
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
			analysis := app.Analyzer.Analyze(question)
			result, err := app.Searcher.Search(ctx, analysis)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if analysis.Category != "" {
				fmt.Fprintf(out, "category: %s\n", analysis.Category)
			}
			fmt.Fprintf(out, "keywords: %s\n", strings.Join(result.KeywordsUsed, ", "))
			printMatches(cmd, "laws", result.Laws)
			printMatches(cmd, "cases", result.Cases)
			return nil
		},
	}
	return cmd
}

func printMatches(cmd *cobra.Command, label string, matches []search.Match) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d):\n", label, len(matches))
	for _, m := range matches {
		fmt.Fprintf(out, "  [%.4f] %s\n", m.Similarity, m.Document.Title)
	}
}
