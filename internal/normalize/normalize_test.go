package normalize

import (
	"testing"
	"time"

	"marketbrief/internal/classify"
	"marketbrief/internal/core"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func rawArticle(title, description, image string) core.RawArticle {
	raw := core.RawArticle{
		Title:       title,
		Description: description,
		URL:         "https://example.com/article",
		URLToImage:  image,
		PublishedAt: "2025-06-01T10:00:00Z",
	}
	raw.Source.Name = "Example Wire"
	return raw
}

func TestNormalizeDropsIncompleteEntries(t *testing.T) {
	n := NewWithClock(classify.DefaultLexicon(), fixedClock)

	raw := []core.RawArticle{
		rawArticle("", "missing title", "https://img.example.com/a.jpg"),
		rawArticle("Missing image", "still dropped", ""),
		rawArticle("Stocks rally on strong earnings", "Shares gain across the board today.", "https://img.example.com/b.jpg"),
	}

	articles := n.Normalize(raw, "")
	if len(articles) != 1 {
		t.Fatalf("Expected 1 article after filtering, got %d", len(articles))
	}
	if articles[0].Title != "Stocks rally on strong earnings" {
		t.Errorf("Unexpected surviving article: %s", articles[0].Title)
	}
}

func TestNormalizeSynthesizesPositionalIDs(t *testing.T) {
	n := NewWithClock(classify.DefaultLexicon(), fixedClock)

	raw := []core.RawArticle{
		rawArticle("", "dropped", "https://img.example.com/a.jpg"),
		rawArticle("First kept", "desc one", "https://img.example.com/b.jpg"),
		rawArticle("Second kept", "desc two", "https://img.example.com/c.jpg"),
	}

	articles := n.Normalize(raw, "")
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	// Ids count kept entries only, so a dropped entry leaves no gap.
	if articles[0].ID != "1" || articles[1].ID != "2" {
		t.Errorf("Expected ids 1 and 2, got %s and %s", articles[0].ID, articles[1].ID)
	}

	searched := n.Normalize(raw, "search-")
	if searched[0].ID != "search-1" {
		t.Errorf("Expected prefixed id search-1, got %s", searched[0].ID)
	}
}

func TestNormalizeSummaryFallbackChain(t *testing.T) {
	n := NewWithClock(classify.DefaultLexicon(), fixedClock)

	withDescription := rawArticle("Title A", "the description", "https://img.example.com/a.jpg")
	withContent := rawArticle("Title B", "", "https://img.example.com/b.jpg")
	withContent.Content = "the content body"
	withNeither := rawArticle("Title C", "", "https://img.example.com/c.jpg")

	articles := n.Normalize([]core.RawArticle{withDescription, withContent, withNeither}, "")
	if articles[0].Summary != "the description" {
		t.Errorf("Expected description as summary, got %q", articles[0].Summary)
	}
	if articles[1].Summary != "the content body" {
		t.Errorf("Expected content as summary fallback, got %q", articles[1].Summary)
	}
	if articles[2].Summary != PlaceholderSummary {
		t.Errorf("Expected placeholder summary, got %q", articles[2].Summary)
	}
}

func TestNormalizeDerivesClassification(t *testing.T) {
	n := NewWithClock(classify.DefaultLexicon(), fixedClock)

	raw := rawArticle("Bitcoin surges to a record high", "Crypto funds report strong gains.", "https://img.example.com/a.jpg")
	articles := n.Normalize([]core.RawArticle{raw}, "")

	if articles[0].Category != core.CategoryCrypto {
		t.Errorf("Expected Crypto category, got %s", articles[0].Category)
	}
	if articles[0].Sentiment != core.SentimentPositive {
		t.Errorf("Expected positive sentiment, got %s", articles[0].Sentiment)
	}
}

func TestNormalizeTimeFields(t *testing.T) {
	n := NewWithClock(classify.DefaultLexicon(), fixedClock)

	raw := rawArticle("Two hours old", "published at ten", "https://img.example.com/a.jpg")
	articles := n.Normalize([]core.RawArticle{raw}, "")

	if articles[0].TimeLabel != "2 hours ago" {
		t.Errorf("Expected \"2 hours ago\", got %q", articles[0].TimeLabel)
	}
	want := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
	if articles[0].Timestamp != want {
		t.Errorf("Expected timestamp %d, got %d", want, articles[0].Timestamp)
	}
}

func TestExtractKeyPoints(t *testing.T) {
	text := "A. This is a longer sentence here. Another decent length one here too. Short."
	points := ExtractKeyPoints(text)

	if len(points) != 2 {
		t.Fatalf("Expected 2 key points, got %d: %v", len(points), points)
	}
	if points[0] != "This is a longer sentence here" {
		t.Errorf("Unexpected first key point: %q", points[0])
	}
	if points[1] != "Another decent length one here too" {
		t.Errorf("Unexpected second key point: %q", points[1])
	}
}

func TestExtractKeyPointsLimits(t *testing.T) {
	if points := ExtractKeyPoints(""); len(points) != 0 {
		t.Errorf("Expected no key points for empty input, got %v", points)
	}
	if points := ExtractKeyPoints("Tiny. Also tiny. Nope."); len(points) != 0 {
		t.Errorf("Expected no key points for short sentences, got %v", points)
	}

	long := "This sentence is long enough number one. This sentence is long enough number two. " +
		"This sentence is long enough number three. This sentence is long enough number four."
	if points := ExtractKeyPoints(long); len(points) != 3 {
		t.Errorf("Expected key points capped at 3, got %d", len(points))
	}
}

func TestTimeAgo(t *testing.T) {
	now := fixedClock()

	cases := []struct {
		past time.Time
		want string
	}{
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-59 * time.Minute), "59 minutes ago"},
		{now.Add(-90 * time.Minute), "1 hours ago"},
		{now.Add(-23 * time.Hour), "23 hours ago"},
		{now.Add(-25 * time.Hour), "1 days ago"},
		{now.Add(-400 * 24 * time.Hour), "400 days ago"},
	}

	for _, tc := range cases {
		if got := TimeAgo(now, tc.past); got != tc.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tc.past, got, tc.want)
		}
	}
}
