package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/opensearch"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/postgres"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/index"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
)

// NewIndexCmd rebuilds the term-weight indices and the legal keyword
// dictionary from the corpus and writes them to the artifact directory.
func NewIndexCmd() *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build index artifacts from the stored corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg, log := cc.Config, cc.Logger

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()
			store := postgres.NewCorpusRepo(pool)

			laws, err := store.ListLaws(ctx)
			if err != nil {
				return err
			}
			cases, err := store.ListCases(ctx)
			if err != nil {
				return err
			}
			log.Info("corpus loaded", logging.Int("laws", len(laws)), logging.Int("cases", len(cases)))

			seg := segment.NewSegmenter()
			dict := index.BuildDictionary(seg, laws, cases)
			seg.AddBiasTerms(dict.Terms())

			builder := index.NewBuilder(seg)
			lawIdx, err := builder.Build(laws)
			if err != nil {
				return err
			}
			caseIdx, err := builder.Build(cases)
			if err != nil {
				return err
			}

			arts := index.Artifacts{Laws: lawIdx, Cases: caseIdx, Dictionary: dict}
			if err := index.SaveArtifacts(cfg.Index.ArtifactDir, arts); err != nil {
				return err
			}
			log.Info("index artifacts written",
				logging.String("dir", cfg.Index.ArtifactDir),
				logging.Int("dictionary_terms", len(dict)))

			if push {
				osc, err := opensearch.NewClient(ctx, cfg.OpenSearch, log)
				if err != nil {
					return err
				}
				if err := osc.IndexCorpus(ctx, laws, cases); err != nil {
					return err
				}
				log.Info("corpus pushed to opensearch")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d laws, %d cases, %d dictionary terms\n",
				len(laws), len(cases), len(dict))
			return nil
		},
	}

	cmd.Flags().BoolVar(&push, "push-opensearch", false, "also index the corpus into OpenSearch")
	return cmd
}
