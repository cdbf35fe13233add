package analyze

import (
	"sort"
	"strings"
)

// CategoryScore is one category's keyword-overlap score for a question.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Classify scores the raw question text against each category's trigger
// keywords.  A keyword contributes 1 when it occurs anywhere in the text as
// a substring; multiple occurrences of the same keyword still count once.
// Categories with score 0 are dropped.  The returned slice is ordered by
// descending score, ties resolved by table order, so the result is stable
// for a fixed table.  An empty result yields category "".
func Classify(text string, table []CategoryEntry) (string, []CategoryScore) {
	var scores []CategoryScore
	for _, entry := range table {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > 0 {
			scores = append(scores, CategoryScore{Category: entry.Name, Score: score})
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) == 0 {
		return "", nil
	}
	return scores[0].Category, scores
}
