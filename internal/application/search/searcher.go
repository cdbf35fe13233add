// Package search retrieves candidate laws and cases for an analyzed
// question and re-ranks them by cosine similarity against the question's
// term-frequency vector.
package search

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/analyze"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/index"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Match is one retrieved document with its similarity to the question.
type Match struct {
	Document   corpus.Document `json:"document"`
	Similarity float64         `json:"similarity"`
}

// Result is the outcome of one retrieval pass, ordered by similarity
// descending within laws and cases.
type Result struct {
	Laws         []Match  `json:"laws"`
	Cases        []Match  `json:"cases"`
	KeywordsUsed []string `json:"keywords_used"`
	Category     string   `json:"category"`
	CaseType     string   `json:"case_type"`
}

// Searcher runs keyword-fused retrieval over a corpus store.
type Searcher struct {
	store     corpus.Retriever
	seg       *segment.Segmenter
	lawLimit  int
	caseLimit int
	log       logging.Logger
}

// NewSearcher wires a Searcher over the given retriever and segmenter.
func NewSearcher(store corpus.Retriever, seg *segment.Segmenter, lawLimit, caseLimit int, log logging.Logger) *Searcher {
	return &Searcher{
		store:     store,
		seg:       seg,
		lawLimit:  lawLimit,
		caseLimit: caseLimit,
		log:       log.Named("searcher"),
	}
}

// Search fuses the analysis keywords, queries laws and cases concurrently,
// and re-ranks each candidate list by cosine similarity between the
// question and candidate token-frequency vectors.  A store failure returns
// ErrCodeRetrievalUnavailable; the caller decides how to degrade.
func (s *Searcher) Search(ctx context.Context, res analyze.AnalysisResult) (Result, error) {
	keywords := FuseKeywords(res)
	caseType := analyze.CaseTypeForCategory(res.Category)

	out := Result{
		Laws:         []Match{},
		Cases:        []Match{},
		KeywordsUsed: keywords,
		Category:     res.Category,
		CaseType:     caseType,
	}
	if len(keywords) == 0 {
		return out, nil
	}

	var laws, cases []corpus.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		laws, err = s.store.SearchLaws(gctx, keywords, res.Category, s.lawLimit)
		return err
	})
	g.Go(func() error {
		var err error
		cases, err = s.store.SearchCases(gctx, keywords, caseType, s.caseLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, errors.Wrap(err, errors.ErrCodeRetrievalUnavailable, "corpus retrieval failed")
	}

	questionVec := index.TermFrequency(res.Tokens)
	out.Laws = s.rank(questionVec, laws)
	out.Cases = s.rank(questionVec, cases)

	s.log.Debug("retrieval complete",
		logging.Int("keywords", len(keywords)),
		logging.Int("laws", len(out.Laws)),
		logging.Int("cases", len(out.Cases)),
	)
	return out, nil
}

// rank scores each candidate body against the question vector and sorts by
// similarity descending.  Titles are excluded from the candidate vector;
// they drive retrieval, not ranking.  The sort is stable, so the store's
// newest-first order is preserved among equal scores.
func (s *Searcher) rank(questionVec index.TermWeights, docs []corpus.Document) []Match {
	matches := make([]Match, 0, len(docs))
	for _, doc := range docs {
		docVec := index.TermFrequency(s.seg.Tokenize(doc.Content))
		matches = append(matches, Match{Document: doc, Similarity: Cosine(questionVec, docVec)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// FuseKeywords merges every keyword source of the analysis into one
// deduplicated list, preserving first-seen order: TF-IDF keywords, TextRank
// keywords, legal-dictionary hits, entity values, then actions.
func FuseKeywords(res analyze.AnalysisResult) []string {
	seen := make(map[string]struct{})
	var fused []string
	add := func(kw string) {
		if kw == "" {
			return
		}
		if _, dup := seen[kw]; dup {
			return
		}
		seen[kw] = struct{}{}
		fused = append(fused, kw)
	}

	for _, st := range res.TFIDFKeywords {
		add(st.Term)
	}
	for _, kw := range res.TextRankKeywords {
		add(kw)
	}
	for _, kw := range res.LegalKeywords {
		add(kw.Term)
	}
	for _, e := range res.Entities {
		add(e.Value)
	}
	for _, a := range res.Actions {
		add(a)
	}
	return fused
}
