package trending

import (
	"testing"

	"marketbrief/internal/core"
)

func article(title, summary string) core.Article {
	return core.Article{Title: title, Summary: summary}
}

func TestTopicsCountsAcrossArticles(t *testing.T) {
	agg := NewAggregator()

	articles := []core.Article{
		article("Market rally continues", "Traders watch the market closely"),
		article("Market outlook for the week", "Analysts remain cautious"),
	}

	topics := agg.Topics(articles)

	var marketCount int
	for _, topic := range topics {
		if topic.Keyword == "market" {
			marketCount = topic.Count
		}
	}
	if marketCount < 2 {
		t.Errorf("Expected count for \"market\" >= 2, got %d", marketCount)
	}
}

func TestTopicsDiscardsShortTokens(t *testing.T) {
	agg := NewAggregator()

	articles := []core.Article{
		article("the a up dow", "of in at on the"),
	}

	if topics := agg.Topics(articles); len(topics) != 0 {
		t.Errorf("Expected no topics from short tokens, got %v", topics)
	}
}

func TestTopicsRepeatedWordInOneArticle(t *testing.T) {
	agg := NewAggregator()

	// No per-article dedup: a repeated word within one article counts twice.
	articles := []core.Article{
		article("crypto winter", "crypto funds retreat"),
	}

	topics := agg.Topics(articles)
	if len(topics) == 0 || topics[0].Keyword != "crypto" || topics[0].Count != 2 {
		t.Errorf("Expected crypto counted twice, got %v", topics)
	}
}

func TestTopicsTopEightByDescendingCount(t *testing.T) {
	agg := NewAggregator()

	articles := []core.Article{
		article("alpha alpha alpha bravo bravo charlie", ""),
		article("delta echoes foxtrot golfs hotel indigo julia kilos limas", ""),
	}

	topics := agg.Topics(articles)
	if len(topics) != 8 {
		t.Fatalf("Expected 8 topics, got %d", len(topics))
	}
	for i := 1; i < len(topics); i++ {
		if topics[i].Count > topics[i-1].Count {
			t.Errorf("Topics not sorted by descending count at %d: %v", i, topics)
		}
	}
	if topics[0].Keyword != "alpha" || topics[0].Count != 3 {
		t.Errorf("Expected alpha(3) first, got %v", topics[0])
	}
}

func TestTopicsTieBreakKeepsFirstOccurrenceOrder(t *testing.T) {
	agg := NewAggregator()

	articles := []core.Article{
		article("zebra apple mango", ""),
	}

	topics := agg.Topics(articles)
	want := []string{"zebra", "apple", "mango"}
	for i, keyword := range want {
		if topics[i].Keyword != keyword {
			t.Errorf("Expected %s at position %d, got %s", keyword, i, topics[i].Keyword)
		}
	}
}

func TestTopicsEmptyCollection(t *testing.T) {
	agg := NewAggregator()
	if topics := agg.Topics(nil); len(topics) != 0 {
		t.Errorf("Expected no topics for empty collection, got %v", topics)
	}
}
