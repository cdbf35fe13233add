package index

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

func lawDoc(id int64, title, content string) corpus.Document {
	return corpus.Document{ID: id, Type: corpus.DocTypeLaw, Title: title, Content: content}
}

func caseDoc(id int64, title, content string) corpus.Document {
	return corpus.Document{ID: id, Type: corpus.DocTypeCase, Title: title, Content: content}
}

func TestBuildEmptyCorpus(t *testing.T) {
	b := NewBuilder(segment.NewSegmenter())
	_, err := b.Build(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptyCorpus))
}

func TestBuildIDFValues(t *testing.T) {
	b := NewBuilder(segment.NewSegmenter())
	idx, err := b.Build([]corpus.Document{
		lawDoc(1, "刑法", "傷害罪"),
		lawDoc(2, "刑法", "竊盜罪"),
	})
	require.NoError(t, err)

	// term in both of 2 docs: ln(2/3) + 1
	assert.InDelta(t, math.Log(2.0/3.0)+1, idx.IDF["刑法"], 1e-9)
	// term in 1 of 2 docs: ln(2/2) + 1 = 1
	assert.InDelta(t, 1.0, idx.IDF["傷害"], 1e-9)
}

func TestBuildIDFMonotonicity(t *testing.T) {
	b := NewBuilder(segment.NewSegmenter())
	idx, err := b.Build([]corpus.Document{
		lawDoc(1, "刑法 傷害", ""),
		lawDoc(2, "刑法 竊盜", ""),
		lawDoc(3, "刑法", ""),
		lawDoc(4, "民法 傷害", ""),
	})
	require.NoError(t, err)

	// rarer terms weigh at least as much as common ones
	assert.GreaterOrEqual(t, idx.IDF["竊盜"], idx.IDF["傷害"])
	assert.GreaterOrEqual(t, idx.IDF["傷害"], idx.IDF["刑法"])
}

func TestBuildIdempotent(t *testing.T) {
	docs := []corpus.Document{
		lawDoc(1, "刑法", "故意傷害他人身體者，處五年以下有期徒刑"),
		lawDoc(2, "民法", "因故意或過失，不法侵害他人之權利者，負損害賠償責任"),
	}
	b := NewBuilder(segment.NewSegmenter())

	first, err := b.Build(docs)
	require.NoError(t, err)
	second, err := b.Build(docs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTopKeywords(t *testing.T) {
	b := NewBuilder(segment.NewSegmenter())
	idx, err := b.Build([]corpus.Document{
		lawDoc(1, "刑法", "過失傷害"),
		lawDoc(2, "刑法", "竊盜"),
		lawDoc(3, "民法", "損害賠償"),
	})
	require.NoError(t, err)

	seg := segment.NewSegmenter()
	toks := seg.Tokenize("刑法的過失傷害與損害賠償")
	kws := idx.TopKeywords(toks, 2)

	// 刑法 appears in two of three docs, the others in one each, so the
	// rarer terms outrank it.
	require.Len(t, kws, 2)
	assert.Contains(t, kws, "過失傷害")
	assert.Contains(t, kws, "損害賠償")
	assert.NotContains(t, kws, "刑法")

	// ties break by first appearance in the question
	assert.Equal(t, []string{"過失傷害", "損害賠償"}, kws)

	// deterministic across calls
	assert.Equal(t, kws, idx.TopKeywords(toks, 2))
}

func TestTopKeywordsEmpty(t *testing.T) {
	idx := &Index{DocCount: 1, IDF: map[string]float64{}}
	assert.Nil(t, idx.TopKeywords(nil, 5))
	assert.Nil(t, idx.TopKeywords([]string{"刑法"}, 0))
}

func TestBuildDictionary(t *testing.T) {
	seg := segment.NewSegmenter()
	laws := []corpus.Document{
		{ID: 1, Type: corpus.DocTypeLaw, Title: "刑法", Category: "刑事"},
		{ID: 2, Type: corpus.DocTypeLaw, Title: "民法", Category: "民事"},
	}
	cases := []corpus.Document{
		{ID: 7, Type: corpus.DocTypeCase, Title: "刑法傷害案件", Category: "刑事"},
	}

	dict := BuildDictionary(seg, laws, cases)

	// seen in both corpora escalates to both and never demotes
	assert.Equal(t, SourceBoth, dict["刑法"].Type)
	assert.Equal(t, SourceLaw, dict["民法"].Type)
	assert.Equal(t, SourceCase, dict["傷害"].Type)

	// categories and document ids accumulate across both corpora
	assert.Equal(t, []string{"刑事"}, dict["刑法"].Categories)
	assert.Equal(t, []int64{1, 7}, dict["刑法"].IDs)
	assert.Equal(t, []int64{7}, dict["傷害"].IDs)

	// single-rune tokens excluded
	for kw := range dict {
		assert.GreaterOrEqual(t, len([]rune(kw)), 2)
	}
}

func TestDictionaryMatchTokensFrequencyOrder(t *testing.T) {
	dict := Dictionary{
		"傷害":   {Type: SourceCase, IDs: []int64{7}},
		"損害賠償": {Type: SourceLaw, Categories: []string{"民事"}, IDs: []int64{2}},
	}

	// 傷害 occurs three times, 損害賠償 once: frequency wins over term length.
	tokens := []string{"損害賠償", "傷害", "傷害", "傷害", "起訴"}
	hits := dict.MatchTokens(tokens, 10)
	require.Len(t, hits, 2)
	assert.Equal(t, "傷害", hits[0].Term)
	assert.Equal(t, 3, hits[0].Frequency)
	assert.Equal(t, "損害賠償", hits[1].Term)
	assert.Equal(t, 1, hits[1].Frequency)

	// the dictionary entry rides along with each hit
	assert.Equal(t, SourceLaw, hits[1].Entry.Type)
	assert.Equal(t, []string{"民事"}, hits[1].Entry.Categories)
}

func TestDictionaryMatchTokensTopKAndTies(t *testing.T) {
	dict := Dictionary{
		"刑法": {Type: SourceLaw},
		"民法": {Type: SourceLaw},
		"傷害": {Type: SourceCase},
	}

	// equal frequencies keep first-occurrence order
	hits := dict.MatchTokens([]string{"民法", "刑法", "傷害"}, 10)
	require.Len(t, hits, 3)
	assert.Equal(t, "民法", hits[0].Term)
	assert.Equal(t, "刑法", hits[1].Term)

	// topK caps the result after ranking
	hits = dict.MatchTokens([]string{"傷害", "傷害", "民法", "刑法"}, 2)
	require.Len(t, hits, 2)
	assert.Equal(t, "傷害", hits[0].Term)

	assert.Empty(t, dict.MatchTokens([]string{"無關", "句子"}, 10))
	assert.Empty(t, dict.MatchTokens(nil, 10))
}

func TestArtifactsRoundTrip(t *testing.T) {
	b := NewBuilder(segment.NewSegmenter())
	laws, err := b.Build([]corpus.Document{lawDoc(1, "刑法", "傷害")})
	require.NoError(t, err)
	cases, err := b.Build([]corpus.Document{caseDoc(1, "傷害案件", "判決")})
	require.NoError(t, err)

	dir := t.TempDir()
	saved := Artifacts{Laws: laws, Cases: cases, Dictionary: Dictionary{
		"刑法": {Type: SourceLaw, Categories: []string{"刑事"}, IDs: []int64{1}},
	}}
	require.NoError(t, SaveArtifacts(dir, saved))

	loaded, err := LoadArtifacts(dir)
	require.NoError(t, err)
	assert.Equal(t, saved.Laws, loaded.Laws)
	assert.Equal(t, saved.Cases, loaded.Cases)
	assert.Equal(t, saved.Dictionary, loaded.Dictionary)
}

func TestLoadArtifactsMissing(t *testing.T) {
	_, err := LoadArtifacts(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeArtifactReadFailed))
}
