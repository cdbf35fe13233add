// Package textrank ranks keywords in a token stream by running PageRank
// over a sliding-window co-occurrence graph.  It complements the TF-IDF
// extractor: TF-IDF favors corpus-rare terms, TextRank favors terms central
// to the question itself.
package textrank

import "sort"

const (
	damping    = 0.85
	iterations = 20
	windowSize = 2
)

// TopKeywords returns up to k tokens ranked by TextRank score.  Ties break
// by the token's first appearance, so extraction is deterministic.  Tokens
// shorter than two runes are ignored as graph nodes.
func TopKeywords(toks []string, k int) []string {
	if k < 1 {
		return nil
	}

	nodes, order := collectNodes(toks)
	if len(nodes) == 0 {
		return nil
	}

	edges := buildEdges(toks, nodes)
	scores := rank(nodes, edges)

	ranked := make([]string, 0, len(nodes))
	for tok := range nodes {
		ranked = append(ranked, tok)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return order[ranked[i]] < order[ranked[j]]
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

func collectNodes(toks []string) (map[string]struct{}, map[string]int) {
	nodes := make(map[string]struct{})
	order := make(map[string]int)
	for i, tok := range toks {
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, ok := nodes[tok]; !ok {
			nodes[tok] = struct{}{}
			order[tok] = i
		}
	}
	return nodes, order
}

// buildEdges counts undirected co-occurrences between eligible tokens within
// windowSize positions of each other.
func buildEdges(toks []string, nodes map[string]struct{}) map[string]map[string]float64 {
	edges := make(map[string]map[string]float64)
	link := func(a, b string) {
		if edges[a] == nil {
			edges[a] = make(map[string]float64)
		}
		edges[a][b]++
	}
	for i, a := range toks {
		if _, ok := nodes[a]; !ok {
			continue
		}
		for j := i + 1; j <= i+windowSize && j < len(toks); j++ {
			b := toks[j]
			if _, ok := nodes[b]; !ok || a == b {
				continue
			}
			link(a, b)
			link(b, a)
		}
	}
	return edges
}

func rank(nodes map[string]struct{}, edges map[string]map[string]float64) map[string]float64 {
	n := float64(len(nodes))
	scores := make(map[string]float64, len(nodes))
	for tok := range nodes {
		scores[tok] = 1.0 / n
	}

	outWeight := make(map[string]float64, len(edges))
	for tok, nbrs := range edges {
		for _, w := range nbrs {
			outWeight[tok] += w
		}
	}

	for it := 0; it < iterations; it++ {
		next := make(map[string]float64, len(nodes))
		for tok := range nodes {
			sum := 0.0
			for nbr, w := range edges[tok] {
				if outWeight[nbr] > 0 {
					sum += scores[nbr] * w / outWeight[nbr]
				}
			}
			next[tok] = (1-damping)/n + damping*sum
		}
		scores = next
	}
	return scores
}
