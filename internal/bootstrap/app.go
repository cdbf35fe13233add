// Package bootstrap wires configuration into the full application object
// graph: storage, cache, index artifacts, the QA pipeline and the HTTP
// server.  Both the API server binary and the CLI build on it.
package bootstrap

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/analyze"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/qa"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/respond"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/search"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/metrics"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/opensearch"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/postgres"
	redisinfra "github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/redis"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/index"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
)

// App is the wired application.
type App struct {
	Cfg      *config.Config
	Log      logging.Logger
	Pool     *pgxpool.Pool
	Store    *postgres.CorpusRepo
	Feedback *postgres.FeedbackRepo
	Service  *qa.Service
	Analyzer *analyze.Analyzer
	Searcher *search.Searcher
	Metrics  *metrics.Metrics
	Segment  *segment.Segmenter
}

// New builds the application from configuration.  Index artifacts must
// already exist; run the index command first on a fresh deployment.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &App{
		Cfg:      cfg,
		Log:      log,
		Pool:     pool,
		Store:    postgres.NewCorpusRepo(pool),
		Feedback: postgres.NewFeedbackRepo(pool),
		Metrics:  metrics.New(),
		Segment:  segment.NewSegmenter(),
	}

	arts, err := index.LoadArtifacts(cfg.Index.ArtifactDir)
	if err != nil {
		pool.Close()
		return nil, err
	}

	app.Analyzer = analyze.NewAnalyzer(app.Segment, arts, analyze.DefaultCategoryTable(), cfg.Index.TopKeywords, log)

	retriever, err := app.retriever(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}
	app.Searcher = search.NewSearcher(retriever, app.Segment, cfg.Search.LawLimit, cfg.Search.CaseLimit, log)

	composer, err := respond.NewComposer(respond.DefaultCatalog(), rand.New(rand.NewSource(time.Now().UnixNano())), log)
	if err != nil {
		pool.Close()
		return nil, err
	}

	var cache qa.AnswerCache
	if cfg.Redis.Enabled {
		client, err := redisinfra.NewClient(ctx, cfg.Redis)
		if err != nil {
			// The cache is an optimization; keep serving without it.
			log.Warn("redis unavailable, answer caching disabled", logging.Err(err))
		} else {
			cache = redisinfra.NewCache(client, cfg.Redis.KeyPrefix, cfg.Redis.AnswerTTL, log)
		}
	}

	app.Service = qa.NewService(app.Analyzer, app.Searcher, composer, cache, app.Metrics, log)
	return app, nil
}

// retriever picks the configured retrieval backend.
func (a *App) retriever(ctx context.Context) (corpus.Retriever, error) {
	if a.Cfg.Search.Backend == "opensearch" {
		return opensearch.NewClient(ctx, a.Cfg.OpenSearch, a.Log)
	}
	return a.Store, nil
}

// Close releases every held resource.
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
