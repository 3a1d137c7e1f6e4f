package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"marketbrief/internal/classify"
	"marketbrief/internal/core"
)

// PlaceholderSummary is used when the provider supplies neither a description
// nor content for an article.
const PlaceholderSummary = "No summary available."

// maxKeyPoints caps the number of highlight sentences extracted per article.
const maxKeyPoints = 3

// Normalizer converts raw provider payloads into canonical articles. It is a
// pure transform: category and sentiment are derived once from the raw text
// and never change afterward.
type Normalizer struct {
	lexicon classify.Lexicon
	now     func() time.Time
}

// New creates a Normalizer with the default lexicon and wall clock.
func New() *Normalizer {
	return &Normalizer{
		lexicon: classify.DefaultLexicon(),
		now:     time.Now,
	}
}

// NewWithClock creates a Normalizer with an injected lexicon and clock,
// used by tests to pin relative-time labels.
func NewWithClock(lexicon classify.Lexicon, now func() time.Time) *Normalizer {
	return &Normalizer{lexicon: lexicon, now: now}
}

// Lexicon returns the lexicon this normalizer classifies with.
func (n *Normalizer) Lexicon() classify.Lexicon {
	return n.lexicon
}

// Normalize converts a raw batch into canonical articles. Entries missing a
// title or image URL are silently dropped, not reported as errors. Ids are
// synthesized from the position among the kept entries, prefixed with idPrefix
// (empty for feed batches, "search-" for chat search batches). Ordering
// follows provider order.
func (n *Normalizer) Normalize(raw []core.RawArticle, idPrefix string) []core.Article {
	articles := make([]core.Article, 0, len(raw))

	for _, entry := range raw {
		if entry.Title == "" || entry.URLToImage == "" {
			continue
		}

		classifyText := entry.Title + " " + entry.Description
		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}
		if summary == "" {
			summary = PlaceholderSummary
		}
		keyPointSource := entry.Description
		if keyPointSource == "" {
			keyPointSource = entry.Content
		}

		published := parsePublishedAt(entry.PublishedAt)

		articles = append(articles, core.Article{
			ID:        idPrefix + strconv.Itoa(len(articles)+1),
			Title:     entry.Title,
			Source:    entry.Source.Name,
			TimeLabel: TimeAgo(n.now(), published),
			Timestamp: published.UnixMilli(),
			ImageURL:  entry.URLToImage,
			Category:  n.lexicon.Categorize(classifyText),
			Sentiment: n.lexicon.Sentiment(classifyText),
			Summary:   summary,
			KeyPoints: ExtractKeyPoints(keyPointSource),
			URL:       entry.URL,
		})
	}

	return articles
}

// parsePublishedAt parses the provider's ISO timestamp. Malformed values
// degrade to the zero time rather than failing the record.
func parsePublishedAt(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ExtractKeyPoints splits free text on sentence terminators and keeps the
// first 3 trimmed fragments longer than 20 characters. Empty input yields an
// empty sequence, not an error.
func ExtractKeyPoints(text string) []string {
	if text == "" {
		return []string{}
	}

	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	points := []string{}
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) > 20 {
			points = append(points, trimmed)
		}
		if len(points) == maxKeyPoints {
			break
		}
	}

	return points
}

// TimeAgo renders the elapsed time between now and past as a relative label:
// "N minutes ago" under an hour, "N hours ago" under a day, otherwise
// "N days ago" with no upper bound.
func TimeAgo(now, past time.Time) string {
	diff := now.Sub(past)
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}
	return fmt.Sprintf("%d days ago", days)
}
