// Package qa is the end-to-end question answering service: analyze the
// question, retrieve candidate laws and cases, compose the advisory answer,
// with caching and metrics around the pipeline.
package qa

import (
	"context"
	"strings"
	"time"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/analyze"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/respond"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/search"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/metrics"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Analyzer produces an AnalysisResult for one question.
type Analyzer interface {
	Analyze(text string) analyze.AnalysisResult
}

// Searcher retrieves and ranks corpus candidates for an analyzed question.
type Searcher interface {
	Search(ctx context.Context, res analyze.AnalysisResult) (search.Result, error)
}

// Composer assembles the final answer.
type Composer interface {
	Compose(question string, analysis analyze.AnalysisResult, result search.Result) respond.Response
}

// AnswerCache is the answer caching contract; the Redis cache satisfies it.
type AnswerCache interface {
	BuildKey(parts ...string) string
	GetOrFill(ctx context.Context, key string, dest interface{}, fill func(context.Context) (interface{}, error)) (bool, error)
}

// Service runs the full question answering pipeline.
type Service struct {
	analyzer Analyzer
	searcher Searcher
	composer Composer
	cache    AnswerCache      // nil disables answer caching
	metrics  *metrics.Metrics // nil disables instrumentation
	log      logging.Logger
}

// NewService wires the pipeline.  cache and m may be nil.
func NewService(a Analyzer, s Searcher, c Composer, cache AnswerCache, m *metrics.Metrics, log logging.Logger) *Service {
	return &Service{
		analyzer: a,
		searcher: s,
		composer: c,
		cache:    cache,
		metrics:  m,
		log:      log.Named("qa"),
	}
}

// Ask answers one question.  Identical questions within the cache TTL are
// served from the cache.  A failed retrieval degrades to a
// no-relevant-info answer instead of failing the request.
func (s *Service) Ask(ctx context.Context, question string) (respond.Response, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return respond.Response{}, errors.InvalidParam("question must not be empty")
	}

	if s.cache == nil {
		return s.answer(ctx, question)
	}

	var resp respond.Response
	key := s.cache.BuildKey("answer", question)
	hit, err := s.cache.GetOrFill(ctx, key, &resp, func(ctx context.Context) (interface{}, error) {
		fresh, err := s.answer(ctx, question)
		if err != nil {
			return nil, err
		}
		return fresh, nil
	})
	if err != nil {
		return respond.Response{}, err
	}
	if s.metrics != nil {
		if hit {
			s.metrics.CacheHits.Inc()
		} else {
			s.metrics.CacheMisses.Inc()
		}
	}
	if hit {
		s.log.Debug("answer served from cache", logging.String("key", key))
	}
	return resp, nil
}

func (s *Service) answer(ctx context.Context, question string) (respond.Response, error) {
	analysis := s.timed("analyze", func() analyze.AnalysisResult {
		return s.analyzer.Analyze(question)
	})

	start := time.Now()
	result, err := s.searcher.Search(ctx, analysis)
	s.observe("search", time.Since(start))
	if err != nil {
		// Degrade to a no-relevant-info answer rather than failing the
		// question outright.
		if s.metrics != nil {
			s.metrics.RetrievalFailures.Inc()
		}
		s.log.Warn("retrieval failed, degrading answer",
			logging.String("question", question), logging.Err(err))
		result = search.Result{
			Laws:     []search.Match{},
			Cases:    []search.Match{},
			Category: analysis.Category,
			CaseType: analyze.CaseTypeForCategory(analysis.Category),
		}
	}

	start = time.Now()
	resp := s.composer.Compose(question, analysis, result)
	s.observe("compose", time.Since(start))

	if s.metrics != nil {
		category := analysis.Category
		if category == "" {
			category = "none"
		}
		s.metrics.QuestionsTotal.WithLabelValues(category).Inc()
	}
	return resp, nil
}

func (s *Service) timed(stage string, fn func() analyze.AnalysisResult) analyze.AnalysisResult {
	start := time.Now()
	res := fn()
	s.observe(stage, time.Since(start))
	return res
}

func (s *Service) observe(stage string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	}
}
