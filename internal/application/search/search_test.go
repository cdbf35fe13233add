package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/analyze"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/index"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// fakeStore lets each test override only the calls it cares about.
type fakeStore struct {
	searchLawsFn  func(ctx context.Context, keywords []string, category string, limit int) ([]corpus.Document, error)
	searchCasesFn func(ctx context.Context, keywords []string, caseType string, limit int) ([]corpus.Document, error)
}

func (f *fakeStore) SearchLaws(ctx context.Context, keywords []string, category string, limit int) ([]corpus.Document, error) {
	if f.searchLawsFn != nil {
		return f.searchLawsFn(ctx, keywords, category, limit)
	}
	return nil, nil
}

func (f *fakeStore) SearchCases(ctx context.Context, keywords []string, caseType string, limit int) ([]corpus.Document, error) {
	if f.searchCasesFn != nil {
		return f.searchCasesFn(ctx, keywords, caseType, limit)
	}
	return nil, nil
}

func (f *fakeStore) GetLaw(context.Context, int64) (*corpus.Document, error)  { return nil, nil }
func (f *fakeStore) GetCase(context.Context, int64) (*corpus.Document, error) { return nil, nil }
func (f *fakeStore) InsertLaw(context.Context, corpus.Document) error         { return nil }
func (f *fakeStore) InsertCase(context.Context, corpus.Document) error        { return nil }
func (f *fakeStore) ListLaws(context.Context) ([]corpus.Document, error)      { return nil, nil }
func (f *fakeStore) ListCases(context.Context) ([]corpus.Document, error)     { return nil, nil }

func TestCosine(t *testing.T) {
	x := index.TermWeights{"車禍": 0.5, "賠償": 0.5}

	t.Run("self similarity is 1", func(t *testing.T) {
		assert.InDelta(t, 1.0, Cosine(x, x), 1e-9)
	})

	t.Run("disjoint vectors score 0", func(t *testing.T) {
		y := index.TermWeights{"契約": 1.0}
		assert.Zero(t, Cosine(x, y))
	})

	t.Run("empty vector scores 0", func(t *testing.T) {
		assert.Zero(t, Cosine(x, index.TermWeights{}))
		assert.Zero(t, Cosine(index.TermWeights{}, x))
	})

	t.Run("bounded in [0,1]", func(t *testing.T) {
		y := index.TermWeights{"車禍": 0.9, "保險": 0.1}
		sim := Cosine(x, y)
		assert.Greater(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	})
}

func TestFuseKeywords(t *testing.T) {
	res := analyze.AnalysisResult{
		TFIDFKeywords:    []index.ScoredTerm{{Term: "車禍", Weight: 2}, {Term: "賠償", Weight: 1}},
		TextRankKeywords: []string{"賠償", "保險"},
		LegalKeywords:    []index.LegalKeyword{{Term: "損害賠償", Frequency: 1}},
		Entities:         []analyze.Entity{{Kind: analyze.EntityPerson, Value: "我"}},
		Actions:          []string{"撞了路人"},
	}
	fused := FuseKeywords(res)
	// duplicates collapse, first-seen order preserved
	assert.Equal(t, []string{"車禍", "賠償", "保險", "損害賠償", "我", "撞了路人"}, fused)
}

func analyzed(text string, toks, keywords []string, category string) analyze.AnalysisResult {
	res := analyze.AnalysisResult{OriginalText: text, Tokens: toks, Category: category}
	for _, kw := range keywords {
		res.TFIDFKeywords = append(res.TFIDFKeywords, index.ScoredTerm{Term: kw, Weight: 1})
	}
	return res
}

func TestSearchRanksBySimilarity(t *testing.T) {
	seg := segment.NewSegmenter()
	store := &fakeStore{
		searchLawsFn: func(_ context.Context, _ []string, _ string, _ int) ([]corpus.Document, error) {
			return []corpus.Document{
				{ID: 1, Type: corpus.DocTypeLaw, Title: "公司法", Content: "股東會決議"},
				{ID: 2, Type: corpus.DocTypeLaw, Title: "刑法", Content: "車禍 過失傷害 賠償"},
			}, nil
		},
	}
	s := NewSearcher(store, seg, 5, 3, logging.NewNopLogger())

	toks := seg.Tokenize("車禍賠償")
	res, err := s.Search(context.Background(), analyzed("車禍賠償", toks, []string{"車禍", "賠償"}, "刑事"))
	require.NoError(t, err)

	require.Len(t, res.Laws, 2)
	// the overlapping document ranks first despite arriving second
	assert.Equal(t, int64(2), res.Laws[0].Document.ID)
	assert.Greater(t, res.Laws[0].Similarity, res.Laws[1].Similarity)
	assert.Equal(t, "刑事", res.CaseType)
}

func TestSearchRanksAgainstBodyOnly(t *testing.T) {
	seg := segment.NewSegmenter()
	store := &fakeStore{
		searchLawsFn: func(_ context.Context, _ []string, _ string, _ int) ([]corpus.Document, error) {
			return []corpus.Document{
				// title overlaps the question but the body is unrelated
				{ID: 1, Type: corpus.DocTypeLaw, Title: "車禍賠償條例", Content: "股東會決議"},
				{ID: 2, Type: corpus.DocTypeLaw, Title: "民法", Content: "車禍 賠償"},
			}, nil
		},
	}
	s := NewSearcher(store, seg, 5, 3, logging.NewNopLogger())

	toks := seg.Tokenize("車禍賠償")
	res, err := s.Search(context.Background(), analyzed("車禍賠償", toks, []string{"車禍", "賠償"}, ""))
	require.NoError(t, err)

	require.Len(t, res.Laws, 2)
	assert.Equal(t, int64(2), res.Laws[0].Document.ID)
	// the title must not contribute to the candidate vector
	assert.Zero(t, res.Laws[1].Similarity)
}

func TestSearchPassesCategoryFilters(t *testing.T) {
	var gotCategory, gotCaseType string
	store := &fakeStore{
		searchLawsFn: func(_ context.Context, _ []string, category string, _ int) ([]corpus.Document, error) {
			gotCategory = category
			return nil, nil
		},
		searchCasesFn: func(_ context.Context, _ []string, caseType string, _ int) ([]corpus.Document, error) {
			gotCaseType = caseType
			return nil, nil
		},
	}
	s := NewSearcher(store, segment.NewSegmenter(), 5, 3, logging.NewNopLogger())

	_, err := s.Search(context.Background(), analyzed("q", []string{"工資"}, []string{"工資"}, "勞工"))
	require.NoError(t, err)
	assert.Equal(t, "勞工", gotCategory)
	// labor disputes are tried as civil cases
	assert.Equal(t, "民事", gotCaseType)
}

func TestSearchNoKeywordsSkipsStore(t *testing.T) {
	called := false
	store := &fakeStore{
		searchLawsFn: func(_ context.Context, _ []string, _ string, _ int) ([]corpus.Document, error) {
			called = true
			return nil, nil
		},
	}
	s := NewSearcher(store, segment.NewSegmenter(), 5, 3, logging.NewNopLogger())

	res, err := s.Search(context.Background(), analyze.AnalysisResult{OriginalText: "？"})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, res.Laws)
	assert.Empty(t, res.Cases)
}

func TestSearchStoreFailure(t *testing.T) {
	store := &fakeStore{
		searchCasesFn: func(_ context.Context, _ []string, _ string, _ int) ([]corpus.Document, error) {
			return nil, errors.New(errors.ErrCodeDatabaseError, "connection refused")
		},
	}
	s := NewSearcher(store, segment.NewSegmenter(), 5, 3, logging.NewNopLogger())

	_, err := s.Search(context.Background(), analyzed("q", []string{"車禍"}, []string{"車禍"}, ""))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRetrievalUnavailable))
}
