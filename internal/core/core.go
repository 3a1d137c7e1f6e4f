package core

// Category labels an article with one of the fixed news sections shown in the feed.
type Category string

const (
	CategoryStocks   Category = "Stocks"
	CategoryCrypto   Category = "Crypto"
	CategoryTech     Category = "Tech"
	CategoryMarkets  Category = "Markets"
	CategoryBusiness Category = "Business" // Fallback when no keyword group matches
)

// Sentiment is the derived tone of an article, computed at normalization time
// and never recomputed afterward.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// RawArticle mirrors one entry of the news provider's JSON payload.
type RawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// Article represents a normalized news record with derived category, sentiment
// and key points. Articles are immutable once created; a feed refresh replaces
// the whole collection and resets ids.
type Article struct {
	ID        string    `json:"id"`         // Positional within a fetch batch ("1", "2", ...), not globally stable
	Title     string    `json:"title"`      // Article headline
	Source    string    `json:"source"`     // Publisher name
	TimeLabel string    `json:"time"`       // Relative-time label, e.g. "2 hours ago"
	Timestamp int64     `json:"timestamp"`  // Publication time in epoch milliseconds
	ImageURL  string    `json:"image"`      // Thumbnail URL (required by the feed)
	Category  Category  `json:"category"`   // Derived section label
	Sentiment Sentiment `json:"sentiment"`  // Derived tone
	Summary   string    `json:"summary"`    // Description, falling back to content, then a placeholder
	KeyPoints []string  `json:"key_points"` // Up to 3 highlight sentences (possibly empty)
	URL       string    `json:"url"`        // Link to the full article
}

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry of the assistant conversation. Chat history is an
// append-only ordered sequence owned by the caller.
type ChatMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	Timestamp int64  `json:"timestamp"` // Epoch milliseconds
}

// TrendingTopic is a token (length > 4) and its frequency across the current
// article collection's title+summary text.
type TrendingTopic struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Comment is a user comment attached to an article. Threads are keyed by
// article id and owned by the caller.
type Comment struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Text      string `json:"text"`
	TimeLabel string `json:"time"`
	Likes     int    `json:"likes"`
}

// MarketQuote is one instrument of the simulated live ticker.
type MarketQuote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"` // Percent change, positive or negative
}
