package classify

import (
	"testing"

	"marketbrief/internal/core"
)

func TestCategorizePriorityOrder(t *testing.T) {
	lexicon := DefaultLexicon()

	// A text matching both Stocks and Crypto keywords must classify as Stocks
	// because the Stocks group is checked first.
	category := lexicon.Categorize("Stock traders pile into bitcoin funds")
	if category != core.CategoryStocks {
		t.Errorf("Expected Stocks for mixed stock/bitcoin text, got %s", category)
	}
}

func TestCategorizeGroups(t *testing.T) {
	lexicon := DefaultLexicon()

	cases := []struct {
		text string
		want core.Category
	}{
		{"Shares rally after earnings beat", core.CategoryStocks},
		{"Ethereum upgrade ships next month", core.CategoryCrypto},
		{"New software platform from a startup", core.CategoryTech},
		{"Nasdaq futures point lower", core.CategoryMarkets},
		{"Quarterly results due this week", core.CategoryBusiness},
		{"", core.CategoryBusiness},
	}

	for _, tc := range cases {
		if got := lexicon.Categorize(tc.text); got != tc.want {
			t.Errorf("Categorize(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	lexicon := DefaultLexicon()

	if got := lexicon.Categorize("BITCOIN HITS NEW LEVEL"); got != core.CategoryCrypto {
		t.Errorf("Expected Crypto for uppercase text, got %s", got)
	}
}

func TestSentimentExamples(t *testing.T) {
	lexicon := DefaultLexicon()

	cases := []struct {
		text string
		want core.Sentiment
	}{
		{"Stocks surge on record profit", core.SentimentPositive},
		{"Markets crash amid heavy losses", core.SentimentNegative},
		{"Quarterly earnings report released", core.SentimentNeutral},
		{"", core.SentimentNeutral},
	}

	for _, tc := range cases {
		if got := lexicon.Sentiment(tc.text); got != tc.want {
			t.Errorf("Sentiment(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestSentimentBalancedCountsAreNeutral(t *testing.T) {
	lexicon := DefaultLexicon()

	// One positive hit (surge) against one negative hit (fall).
	if got := lexicon.Sentiment("Oil prices surge then fall back"); got != core.SentimentNeutral {
		t.Errorf("Expected neutral for balanced text, got %s", got)
	}
}

func TestSentimentDistinctKeywordsCountOnce(t *testing.T) {
	lexicon := DefaultLexicon()

	// "fall" appears twice but counts once; two distinct positive keywords win.
	text := "Shares fall, fall again, then surge to a record"
	if got := lexicon.Sentiment(text); got != core.SentimentPositive {
		t.Errorf("Expected positive when distinct positive keywords outnumber negatives, got %s", got)
	}
}

func TestCustomLexicon(t *testing.T) {
	lexicon := Lexicon{
		Categories: []CategoryRule{
			{Category: core.CategoryTech, Keywords: []string{"robot"}},
		},
		Fallback: core.CategoryMarkets,
		Positive: []string{"great"},
		Negative: []string{"bad"},
	}

	if got := lexicon.Categorize("robot uprising"); got != core.CategoryTech {
		t.Errorf("Expected Tech from custom rule, got %s", got)
	}
	if got := lexicon.Categorize("nothing matches"); got != core.CategoryMarkets {
		t.Errorf("Expected custom fallback, got %s", got)
	}
	if got := lexicon.Sentiment("a great day"); got != core.SentimentPositive {
		t.Errorf("Expected positive from custom lexicon, got %s", got)
	}
}
