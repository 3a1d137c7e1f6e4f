package trending

import (
	"sort"
	"strings"

	"marketbrief/internal/core"
)

// Aggregator computes word-frequency trending topics over an article
// collection. The set is recomputed from scratch whenever the collection
// changes; there is no incremental update.
type Aggregator struct {
	minTokenLength int // Tokens at or below this length are discarded
	topN           int
}

// NewAggregator creates an aggregator with the feed defaults: tokens longer
// than 4 characters, top 8 topics.
func NewAggregator() *Aggregator {
	return &Aggregator{minTokenLength: 4, topN: 8}
}

// Topics tokenizes each article's title+summary on whitespace, lowercases,
// discards short tokens and accumulates counts across all articles. A word
// repeated within one article counts multiple times. Topics are ordered by
// descending count; equal counts keep first-occurrence order, which makes the
// tie-break deterministic for a given collection but not meaningful.
func (a *Aggregator) Topics(articles []core.Article) []core.TrendingTopic {
	counts := make(map[string]int)
	var order []string

	for _, article := range articles {
		words := strings.Fields(strings.ToLower(article.Title + " " + article.Summary))
		for _, word := range words {
			if len(word) <= a.minTokenLength {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > a.topN {
		order = order[:a.topN]
	}

	topics := make([]core.TrendingTopic, len(order))
	for i, keyword := range order {
		topics[i] = core.TrendingTopic{Keyword: keyword, Count: counts[keyword]}
	}
	return topics
}
