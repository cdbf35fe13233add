// Package index builds and persists the offline term-weight indices used
// for keyword extraction, plus the legal keyword dictionary derived from
// corpus document titles.
package index

import (
	"math"
	"sort"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// TermWeights maps a term to its weight within one document or query.
type TermWeights map[string]float64

// Index is the term-weight index over one corpus (laws or cases).
type Index struct {
	// DocCount is the number of documents the index was built from.
	DocCount int `json:"doc_count"`
	// DF holds per-term document frequencies.
	DF map[string]int `json:"df"`
	// IDF holds per-term inverse document frequencies,
	// idf(t) = ln(N/(df+1)) + 1.
	IDF map[string]float64 `json:"idf"`
	// Docs holds per-document TF-IDF vectors keyed by document ID.
	Docs map[int64]TermWeights `json:"docs"`
}

// Builder constructs indices from corpus documents using a shared segmenter.
type Builder struct {
	seg *segment.Segmenter
}

// NewBuilder returns a Builder over the given segmenter.
func NewBuilder(seg *segment.Segmenter) *Builder {
	return &Builder{seg: seg}
}

// Build computes the TF-IDF index for docs.  Building over an empty corpus
// is an error: a silently empty index would make every later retrieval
// return nothing.  Rebuilding over the same corpus yields an equal index.
func (b *Builder) Build(docs []corpus.Document) (*Index, error) {
	if len(docs) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyCorpus, "cannot build index over empty corpus")
	}

	idx := &Index{
		DocCount: len(docs),
		DF:       make(map[string]int),
		IDF:      make(map[string]float64),
		Docs:     make(map[int64]TermWeights, len(docs)),
	}

	tokenized := make(map[int64][]string, len(docs))
	for _, doc := range docs {
		toks := b.seg.Tokenize(doc.Title + " " + doc.Content)
		tokenized[doc.ID] = toks
		seen := make(map[string]struct{}, len(toks))
		for _, t := range toks {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			idx.DF[t]++
		}
	}

	n := float64(idx.DocCount)
	for term, df := range idx.DF {
		idx.IDF[term] = math.Log(n/float64(df+1)) + 1
	}

	for id, toks := range tokenized {
		idx.Docs[id] = weighTFIDF(toks, idx)
	}
	return idx, nil
}

// weighTFIDF computes tf(t)*idf(t) over toks, with tf normalized by token
// count.
func weighTFIDF(toks []string, idx *Index) TermWeights {
	w := make(TermWeights)
	if len(toks) == 0 {
		return w
	}
	counts := TermFrequency(toks)
	for term, tf := range counts {
		w[term] = tf * idx.idf(term)
	}
	return w
}

// idf returns the stored inverse document frequency for term, or the
// df=0 value for terms never seen during the build.
func (idx *Index) idf(term string) float64 {
	if v, ok := idx.IDF[term]; ok {
		return v
	}
	return math.Log(float64(idx.DocCount)) + 1
}

// TermFrequency returns length-normalized term frequencies over toks.
func TermFrequency(toks []string) TermWeights {
	tf := make(TermWeights)
	if len(toks) == 0 {
		return tf
	}
	inc := 1.0 / float64(len(toks))
	for _, t := range toks {
		tf[t] += inc
	}
	return tf
}

// ScoredTerm is a term with its tf×idf weight within one query.
type ScoredTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// TopKeywordsScored scores the question tokens by tf×idf against the index
// and returns up to k highest-scoring terms with their weights.  Ties break
// by the term's first appearance in toks, so extraction is deterministic.
func (idx *Index) TopKeywordsScored(toks []string, k int) []ScoredTerm {
	if len(toks) == 0 || k < 1 {
		return nil
	}
	tf := TermFrequency(toks)

	order := make(map[string]int, len(toks))
	for i, t := range toks {
		if _, ok := order[t]; !ok {
			order[t] = i
		}
	}

	ranked := make([]ScoredTerm, 0, len(tf))
	for term, f := range tf {
		ranked = append(ranked, ScoredTerm{Term: term, Weight: f * idx.idf(term)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return order[ranked[i].Term] < order[ranked[j].Term]
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// TopKeywords is TopKeywordsScored with the weights dropped.
func (idx *Index) TopKeywords(toks []string, k int) []string {
	scored := idx.TopKeywordsScored(toks, k)
	if scored == nil {
		return nil
	}
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Term
	}
	return out
}
