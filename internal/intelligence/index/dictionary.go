package index

import (
	"sort"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
)

// KeywordSource records which corpus a dictionary keyword came from.
type KeywordSource string

const (
	SourceLaw  KeywordSource = "law"
	SourceCase KeywordSource = "case"
	SourceBoth KeywordSource = "both"
)

// DictEntry is one legal-keyword record: the corpus the term came from, the
// categories of the documents whose titles carry it, and those document ids.
// Categories and IDs are kept sorted so serialized artifacts are stable.
type DictEntry struct {
	Type       KeywordSource `json:"type"`
	Categories []string      `json:"categories"`
	IDs        []int64       `json:"ids"`
}

// LegalKeyword is one dictionary hit in a question: the matched term, its
// dictionary entry, and how often the term occurs among the question tokens.
type LegalKeyword struct {
	Term      string    `json:"term"`
	Entry     DictEntry `json:"entry"`
	Frequency int       `json:"frequency"`
}

// Dictionary maps legal keywords drawn from document titles to their
// entries.  A keyword seen in both corpora escalates to SourceBoth and
// never demotes back.
type Dictionary map[string]DictEntry

// BuildDictionary extracts multi-character tokens from the titles of laws
// and cases.  Content is deliberately excluded: titles carry the canonical
// legal vocabulary without the noise of full judgment text.  Each entry
// accumulates the categories and ids of every document whose title carries
// the term.
func BuildDictionary(seg *segment.Segmenter, laws, cases []corpus.Document) Dictionary {
	dict := make(Dictionary)
	dict.absorb(seg, laws, SourceLaw)
	dict.absorb(seg, cases, SourceCase)
	for term, entry := range dict {
		sort.Strings(entry.Categories)
		sort.Slice(entry.IDs, func(i, j int) bool { return entry.IDs[i] < entry.IDs[j] })
		dict[term] = entry
	}
	return dict
}

func (d Dictionary) absorb(seg *segment.Segmenter, docs []corpus.Document, src KeywordSource) {
	for _, doc := range docs {
		for _, tok := range seg.Tokenize(doc.Title) {
			if len([]rune(tok)) < 2 {
				continue
			}
			entry, ok := d[tok]
			switch {
			case !ok:
				entry = DictEntry{Type: src}
			case entry.Type != src && entry.Type != SourceBoth:
				entry.Type = SourceBoth
			}
			if doc.Category != "" && !containsString(entry.Categories, doc.Category) {
				entry.Categories = append(entry.Categories, doc.Category)
			}
			if !containsID(entry.IDs, doc.ID) {
				entry.IDs = append(entry.IDs, doc.ID)
			}
			d[tok] = entry
		}
	}
}

// MatchTokens returns the dictionary terms found among the question tokens,
// each with its entry and token frequency, ordered by frequency descending.
// The sort is stable, so equal frequencies keep first-occurrence order.
// topK caps the result; topK < 1 means unbounded.
func (d Dictionary) MatchTokens(tokens []string, topK int) []LegalKeyword {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	seen := make(map[string]struct{}, len(tokens))
	var hits []LegalKeyword
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		entry, ok := d[tok]
		if !ok {
			continue
		}
		hits = append(hits, LegalKeyword{Term: tok, Entry: entry, Frequency: counts[tok]})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Frequency > hits[j].Frequency
	})
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// Terms returns every keyword in the dictionary, sorted.  Used to prime
// the segmenter so title vocabulary segments as whole words.
func (d Dictionary) Terms() []string {
	terms := make([]string, 0, len(d))
	for kw := range d {
		terms = append(terms, kw)
	}
	sort.Strings(terms)
	return terms
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsID(list []int64, v int64) bool {
	for _, id := range list {
		if id == v {
			return true
		}
	}
	return false
}
