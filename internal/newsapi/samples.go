package newsapi

import (
	"time"

	"marketbrief/internal/core"
)

// SampleArticles returns the built-in fallback dataset used when the provider
// is unreachable or returns nothing usable. Timestamps are anchored to now so
// recency ordering stays sensible.
func SampleArticles(now time.Time) []core.Article {
	return []core.Article{
		{
			ID:        "1",
			Title:     "Stock Market Reaches New Heights as Tech Sector Leads Rally",
			Source:    "Financial Times",
			TimeLabel: "2 hours ago",
			Timestamp: now.Add(-2 * time.Hour).UnixMilli(),
			ImageURL:  "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800&q=80",
			Category:  core.CategoryStocks,
			Sentiment: core.SentimentPositive,
			Summary:   "Major stock indices hit record highs today as technology stocks led a broad-based rally. The S&P 500 gained 1.8% while the Nasdaq jumped 2.3%, driven by strong earnings reports and optimistic economic forecasts.",
			KeyPoints: []string{"S&P 500 up 1.8%", "Tech sector leading gains", "Record trading volumes"},
			URL:       "#",
		},
		{
			ID:        "2",
			Title:     "Bitcoin Surges Past $48,000 on Institutional Demand",
			Source:    "CoinDesk",
			TimeLabel: "3 hours ago",
			Timestamp: now.Add(-3 * time.Hour).UnixMilli(),
			ImageURL:  "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=800&q=80",
			Category:  core.CategoryCrypto,
			Sentiment: core.SentimentPositive,
			Summary:   "Bitcoin rallied above $48,000 driven by increased institutional buying and positive ETF inflows. Major investment firms report record demand for cryptocurrency exposure.",
			KeyPoints: []string{"BTC breaks $48K", "ETF inflows surge", "Institutional adoption grows"},
			URL:       "#",
		},
		{
			ID:        "3",
			Title:     "Federal Reserve Signals Potential Rate Cuts in Coming Months",
			Source:    "Bloomberg",
			TimeLabel: "5 hours ago",
			Timestamp: now.Add(-5 * time.Hour).UnixMilli(),
			ImageURL:  "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?w=800&q=80",
			Category:  core.CategoryMarkets,
			Sentiment: core.SentimentNeutral,
			Summary:   "The Federal Reserve indicated it may consider interest rate cuts if inflation continues its downward trend. Market participants are pricing in multiple rate cuts this year.",
			KeyPoints: []string{"Rate cut expectations rise", "Inflation showing signs of cooling", "Market volatility expected"},
			URL:       "#",
		},
	}
}
