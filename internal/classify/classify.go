package classify

import (
	"strings"

	"marketbrief/internal/core"
)

// CategoryRule pairs a category with the keywords that select it.
type CategoryRule struct {
	Category core.Category
	Keywords []string
}

// Lexicon holds the keyword tables driving categorization and sentiment
// scoring. The tables are explicit configuration so the classification policy
// can be tested and extended independently of ranking and response logic.
type Lexicon struct {
	Categories []CategoryRule // Evaluated in order; first match wins
	Fallback   core.Category  // Returned when no rule matches
	Positive   []string
	Negative   []string
}

// DefaultLexicon returns the built-in financial-news lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Categories: []CategoryRule{
			{Category: core.CategoryStocks, Keywords: []string{"stock", "trading", "shares"}},
			{Category: core.CategoryCrypto, Keywords: []string{"bitcoin", "crypto", "ethereum"}},
			{Category: core.CategoryTech, Keywords: []string{"tech", "software", "ai", "apple", "google"}},
			{Category: core.CategoryMarkets, Keywords: []string{"market", "dow", "nasdaq", "s&p"}},
		},
		Fallback: core.CategoryBusiness,
		Positive: []string{"surge", "gain", "rally", "rise", "jump", "soar", "boost", "up", "high", "record", "profit", "growth", "success"},
		Negative: []string{"fall", "drop", "crash", "decline", "loss", "down", "plunge", "sink", "slump", "weak"},
	}
}

// Categorize assigns a category to the given text. Keyword groups are checked
// in priority order and the first group with a substring match wins, so a text
// matching both a Stocks and a Crypto keyword always classifies as Stocks.
func (l Lexicon) Categorize(text string) core.Category {
	lower := strings.ToLower(text)
	for _, rule := range l.Categories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}
	return l.Fallback
}

// Sentiment scores the given text against the positive and negative keyword
// lists. Each distinct keyword counts once regardless of how often it occurs.
// A positive balance yields positive sentiment, a negative balance negative,
// and a tie (or no hits at all) neutral.
func (l Lexicon) Sentiment(text string) core.Sentiment {
	lower := strings.ToLower(text)

	score := 0
	for _, keyword := range l.Positive {
		if strings.Contains(lower, keyword) {
			score++
		}
	}
	for _, keyword := range l.Negative {
		if strings.Contains(lower, keyword) {
			score--
		}
	}

	switch {
	case score > 0:
		return core.SentimentPositive
	case score < 0:
		return core.SentimentNegative
	default:
		return core.SentimentNeutral
	}
}
