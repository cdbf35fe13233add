package search

import (
	"math"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/index"
)

// Cosine returns the cosine similarity of two term-frequency vectors.
// The result is in [0, 1]; either vector having zero magnitude yields 0.
func Cosine(a, b index.TermWeights) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
