package assistant

import (
	"fmt"
	"strings"

	"marketbrief/internal/core"
)

// summaryPreviewLength caps the per-article summary excerpt in answers.
const summaryPreviewLength = 150

// fallbackTemplates are the canned replies used when no relevant article can
// be found locally or remotely. %s is the original query.
var fallbackTemplates = []string{
	"🤔 I couldn't find specific news about \"%s\" in my current data.\n\n" +
		"Try these related topics:\n" +
		"• Stock market trends\n" +
		"• Cryptocurrency updates\n" +
		"• Tech company earnings\n" +
		"• Economic indicators\n\n" +
		"Or check the news feed for the latest market updates!",

	"📭 No recent news found specifically about \"%s\".\n\n" +
		"The market moves fast! Try:\n" +
		"• Searching for broader terms\n" +
		"• Checking different categories\n" +
		"• Looking at major market indices\n" +
		"• Reviewing economic calendar events",

	"🔍 I don't have fresh news about \"%s\" right now.\n\n" +
		"💡 Popular topics I can help with:\n" +
		"• Bitcoin and cryptocurrency\n" +
		"• Stock market performance\n" +
		"• Federal Reserve updates\n" +
		"• Tech sector news\n" +
		"• Trading strategies\n\n" +
		"Try the search feature in the news feed!",
}

// fallbackText picks one of the canned templates pseudo-randomly and
// substitutes the query.
func (r *Responder) fallbackText(query string) string {
	template := fallbackTemplates[r.randIntn(len(fallbackTemplates))]
	return fmt.Sprintf(template, query)
}

// sentimentLabel renders a sentiment as the trading glyph shown in answers.
func sentimentLabel(sentiment core.Sentiment) string {
	switch sentiment {
	case core.SentimentPositive:
		return "↗ Bullish"
	case core.SentimentNegative:
		return "↘ Bearish"
	default:
		return "→ Neutral"
	}
}

// overallSentiment computes the aggregate verdict by majority vote. A strict
// positive majority over both other tones reads "Mostly Positive", a strict
// negative majority "Mostly Negative", anything else "Mixed/Neutral".
func overallSentiment(articles []core.Article) string {
	counts := make(map[core.Sentiment]int)
	for _, article := range articles {
		counts[article.Sentiment]++
	}

	positive := counts[core.SentimentPositive]
	negative := counts[core.SentimentNegative]
	neutral := counts[core.SentimentNeutral]

	switch {
	case positive > negative && positive > neutral:
		return "↗ Mostly Positive"
	case negative > positive && negative > neutral:
		return "↘ Mostly Negative"
	default:
		return "→ Mixed/Neutral"
	}
}

// truncateSummary cuts a summary to the preview length, appending an ellipsis
// when something was cut.
func truncateSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= summaryPreviewLength {
		return summary
	}
	return string(runes[:summaryPreviewLength]) + "..."
}

// distinctCategories returns the categories represented, in first-occurrence
// order.
func distinctCategories(articles []core.Article) []string {
	seen := make(map[core.Category]bool)
	var categories []string
	for _, article := range articles {
		if !seen[article.Category] {
			seen[article.Category] = true
			categories = append(categories, string(article.Category))
		}
	}
	return categories
}

// positiveCategories returns the categories of the positive articles, in
// order, duplicates preserved.
func positiveCategories(articles []core.Article) []string {
	var categories []string
	for _, article := range articles {
		if article.Sentiment == core.SentimentPositive {
			categories = append(categories, string(article.Category))
		}
	}
	return categories
}

// formatAnswer composes the multi-article chat reply: a block per ranked
// article followed by an aggregate Key Insights section.
func formatAnswer(query string, ranked []core.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Based on current news about \"%s\":\n\n", query)

	for _, article := range ranked {
		fmt.Fprintf(&b, "📰 **%s**\n", article.Title)
		fmt.Fprintf(&b, "🏷️ Category: %s\n", article.Category)
		fmt.Fprintf(&b, "📈 Sentiment: %s\n", sentimentLabel(article.Sentiment))
		fmt.Fprintf(&b, "📝 %s\n", truncateSummary(article.Summary))
		fmt.Fprintf(&b, "🕐 %s\n\n", article.TimeLabel)
	}

	b.WriteString("💡 **Key Insights:**\n")
	fmt.Fprintf(&b, "• Market sentiment: %s\n", overallSentiment(ranked))
	fmt.Fprintf(&b, "• Trending sectors: %s\n", strings.Join(distinctCategories(ranked), ", "))

	if positives := positiveCategories(ranked); len(positives) > 0 {
		fmt.Fprintf(&b, "• Positive developments in %s\n", strings.Join(positives, ", "))
	}

	b.WriteString("\n🔍 Check the news feed for detailed analysis!")

	return b.String()
}
