package relevance

import (
	"strings"
	"testing"

	"marketbrief/internal/core"
)

func article(id, title, summary string, category core.Category) core.Article {
	return core.Article{ID: id, Title: title, Summary: summary, Category: category}
}

func TestKeywordsDropShortAndDuplicateTokens(t *testing.T) {
	keywords := Keywords("Is BTC up or is btc down today")

	want := []string{"btc", "down", "today"}
	if len(keywords) != len(want) {
		t.Fatalf("Expected %v, got %v", want, keywords)
	}
	for i := range want {
		if keywords[i] != want[i] {
			t.Errorf("Expected keyword %q at %d, got %q", want[i], i, keywords[i])
		}
	}
}

func TestRankLimitsAndOrders(t *testing.T) {
	articles := []core.Article{
		article("1", "bitcoin news", "crypto rally explained", core.CategoryCrypto),
		article("2", "bitcoin and crypto rally", "bitcoin rally crypto surge", core.CategoryCrypto),
		article("3", "cooking tips", "nothing relevant here", core.CategoryBusiness),
		article("4", "crypto outlook", "mild coverage", core.CategoryCrypto),
		article("5", "bitcoin crypto rally deep dive", "all three terms", core.CategoryCrypto),
	}

	ranked := Rank("bitcoin crypto rally", articles)

	if len(ranked) != 3 {
		t.Fatalf("Expected at most 3 results, got %d", len(ranked))
	}
	// Articles 2 and 5 match all three keywords, article 1 matches all three
	// as well (bitcoin, crypto, rally across title+summary).
	for _, r := range ranked {
		if r.ID == "3" {
			t.Error("Zero-score article must be discarded")
		}
	}
	// Stable sort: equal scores keep original order.
	if ranked[0].ID != "1" || ranked[1].ID != "2" || ranked[2].ID != "5" {
		t.Errorf("Unexpected ranked order: %s, %s, %s", ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}
}

func TestRankDescendingScores(t *testing.T) {
	articles := []core.Article{
		article("low", "bitcoin only", "no other terms", core.CategoryCrypto),
		article("high", "bitcoin rally", "crypto surge continues", core.CategoryCrypto),
	}

	ranked := Rank("bitcoin crypto rally", articles)
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(ranked))
	}
	if ranked[0].ID != "high" {
		t.Errorf("Expected higher-scoring article first, got %s", ranked[0].ID)
	}
}

func TestRankNoKeywords(t *testing.T) {
	articles := []core.Article{
		article("1", "bitcoin news", "summary", core.CategoryCrypto),
	}

	if ranked := Rank("a an it", articles); len(ranked) != 0 {
		t.Errorf("Expected no results for a query with only short tokens, got %d", len(ranked))
	}
}

func TestMatchesAnyIncludesCategoryText(t *testing.T) {
	a := article("1", "Fed minutes released", "No keyword overlap at all", core.CategoryCrypto)

	// "crypto" appears only in the category label.
	if !MatchesAny("crypto outlook", a) {
		t.Error("Expected category text to participate in the pre-filter")
	}
	if MatchesAny("weather forecast", a) {
		t.Error("Expected no match for unrelated query")
	}
}

func TestFilterByKeywordsPreservesOrder(t *testing.T) {
	articles := []core.Article{
		article("1", "bitcoin rises", "", core.CategoryCrypto),
		article("2", "cooking", "", core.CategoryBusiness),
		article("3", "bitcoin falls", "", core.CategoryCrypto),
	}

	matched := FilterByKeywords("bitcoin", articles)
	if len(matched) != 2 || matched[0].ID != "1" || matched[1].ID != "3" {
		t.Errorf("Unexpected filter result: %v", matched)
	}
}

func TestFilterFeed(t *testing.T) {
	articles := []core.Article{
		article("1", "Stocks climb", "broad gains", core.CategoryStocks),
		article("2", "Bitcoin dips", "crypto slide", core.CategoryCrypto),
		article("3", "Stocks slip", "tech drags", core.CategoryStocks),
	}

	all := FilterFeed(articles, "All", "")
	if len(all) != 3 {
		t.Errorf("Expected All to pass everything, got %d", len(all))
	}

	stocks := FilterFeed(articles, "Stocks", "")
	if len(stocks) != 2 {
		t.Errorf("Expected 2 Stocks articles, got %d", len(stocks))
	}

	searched := FilterFeed(articles, "All", "TECH")
	if len(searched) != 1 || searched[0].ID != "3" {
		t.Errorf("Expected case-insensitive summary match, got %v", searched)
	}

	both := FilterFeed(articles, "Stocks", "climb")
	if len(both) != 1 || both[0].ID != "1" {
		t.Errorf("Expected combined filters to yield article 1, got %v", both)
	}
}

func TestRankMatchesSubstrings(t *testing.T) {
	// Keyword containment is substring-based, so "bit" matches "bitcoin".
	articles := []core.Article{
		article("1", "bitcoin steady", "", core.CategoryCrypto),
	}
	ranked := Rank("bit", articles)
	if len(ranked) != 1 {
		t.Fatalf("Expected substring match, got %d results", len(ranked))
	}
	if !strings.Contains(ranked[0].Title, "bitcoin") {
		t.Errorf("Unexpected match: %v", ranked[0])
	}
}
