// Package segment provides deterministic Chinese word segmentation for
// legal text.  It uses greedy longest-match over a term dictionary seeded
// with a built-in legal lexicon; unknown CJK runs fall back to single
// characters.  The dictionary can be primed with corpus-derived terms so
// law titles and case vocabulary segment as whole words.
package segment

import (
	"strings"
	"unicode"
)

// Stopwords are function words removed from token streams before any
// frequency computation.
var Stopwords = map[string]struct{}{
	"的": {}, "了": {}, "和": {}, "是": {}, "在": {}, "有": {},
	"與": {}, "之": {}, "或": {}, "及": {}, "對": {}, "由": {},
	"上": {}, "中": {}, "下": {}, "為": {}, "以": {}, "等": {},
}

// IsStopword reports whether tok is in the built-in stopword set.
func IsStopword(tok string) bool {
	_, ok := Stopwords[tok]
	return ok
}

// Segmenter splits Chinese text into words by greedy longest-match against
// its dictionary.  It is safe for concurrent reads after priming; callers
// must not call AddBiasTerms concurrently with Tokenize.
type Segmenter struct {
	dict   map[string]struct{}
	maxLen int // longest dictionary entry, in runes
}

// NewSegmenter builds a segmenter over the built-in legal lexicon.
func NewSegmenter() *Segmenter {
	s := &Segmenter{dict: make(map[string]struct{}, len(baseLexicon))}
	for _, term := range baseLexicon {
		s.add(term)
	}
	return s
}

func (s *Segmenter) add(term string) {
	n := len([]rune(term))
	if n < 2 {
		return
	}
	s.dict[term] = struct{}{}
	if n > s.maxLen {
		s.maxLen = n
	}
}

// AddBiasTerms primes the dictionary with additional terms, typically
// tokens drawn from corpus document titles.  Terms shorter than two runes
// are ignored.  Priming is cumulative and idempotent.
func (s *Segmenter) AddBiasTerms(terms []string) {
	for _, t := range terms {
		s.add(t)
	}
}

// Tokenize normalizes text, segments it, and drops stopwords and empty
// tokens.  The result is deterministic for a given dictionary state.
func (s *Segmenter) Tokenize(text string) []string {
	var out []string
	for _, tok := range s.Cut(text) {
		if IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Cut segments text into words without stopword filtering.  Punctuation and
// symbols are treated as boundaries; ASCII letter/digit runs are kept whole.
func (s *Segmenter) Cut(text string) []string {
	var tokens []string
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case isHan(r):
			word, n := s.matchLongest(runes[i:])
			tokens = append(tokens, word)
			i += n
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j])) && !isHan(runes[j]) {
				j++
			}
			tokens = append(tokens, strings.ToLower(string(runes[i:j])))
			i = j
		default:
			// whitespace, punctuation, symbols
			i++
		}
	}
	return tokens
}

// matchLongest returns the longest dictionary entry starting at runes[0],
// falling back to the single leading rune.
func (s *Segmenter) matchLongest(runes []rune) (string, int) {
	max := s.maxLen
	if max > len(runes) {
		max = len(runes)
	}
	for n := max; n >= 2; n-- {
		cand := string(runes[:n])
		if _, ok := s.dict[cand]; ok {
			return cand, n
		}
	}
	return string(runes[:1]), 1
}

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
