package assistant

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"marketbrief/internal/core"
	"marketbrief/internal/logger"
	"marketbrief/internal/newsapi"
	"marketbrief/internal/normalize"
	"marketbrief/internal/relevance"
)

// searchIDPrefix marks articles normalized from a chat-triggered provider
// search, keeping their ids distinct from the feed's positional ids.
const searchIDPrefix = "search-"

// Responder answers free-text questions against the current article
// collection. Resolution is a three-state machine per call: match locally,
// otherwise fetch fresh results from the provider, otherwise fall back to a
// canned reply. Every call returns a chat message; provider errors never
// propagate to the caller.
type Responder struct {
	provider   newsapi.Provider
	normalizer *normalize.Normalizer
	pageSize   int
	randIntn   func(n int) int // Fallback template selection
	now        func() time.Time
}

// NewResponder creates a responder backed by the given provider.
func NewResponder(provider newsapi.Provider) *Responder {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Responder{
		provider:   provider,
		normalizer: normalize.New(),
		pageSize:   10,
		randIntn:   rng.Intn,
		now:        time.Now,
	}
}

// SetPageSize overrides how many results a remote search requests.
func (r *Responder) SetPageSize(pageSize int) {
	if pageSize > 0 {
		r.pageSize = pageSize
	}
}

// SetRand injects the random source used to pick fallback templates, so tests
// can pin the choice.
func (r *Responder) SetRand(intn func(n int) int) {
	r.randIntn = intn
}

// SetClock injects the clock used for message timestamps and relative-time
// labels.
func (r *Responder) SetClock(now func() time.Time) {
	r.now = now
	r.normalizer = normalize.NewWithClock(r.normalizer.Lexicon(), now)
}

// Greeting returns the message that seeds a new chat history.
func (r *Responder) Greeting() core.ChatMessage {
	return r.botMessage("Hi! I'm your AI Trading Assistant 🤖\n\n" +
		"I can help you with:\n" +
		"• Market trend analysis\n" +
		"• News summaries\n" +
		"• Investment insights\n" +
		"• Stock/Crypto updates\n\n" +
		"What would you like to know?")
}

// UserMessage wraps raw input as a user chat message.
func (r *Responder) UserMessage(text string) core.ChatMessage {
	return core.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    core.SenderUser,
		Timestamp: r.now().UnixMilli(),
	}
}

// Respond resolves a query against the article collection. Articles passing
// the keyword pre-filter are answered locally without any network call; an
// empty pre-filter triggers one provider search whose results are normalized
// and ranked the same way; if that also yields nothing (or the call fails),
// one of the canned fallback templates is returned with the query substituted
// in.
func (r *Responder) Respond(ctx context.Context, query string, articles []core.Article) core.ChatMessage {
	local := relevance.FilterByKeywords(query, articles)
	if len(local) > 0 {
		return r.composeOrFallback(query, local)
	}

	fresh, err := r.searchFresh(ctx, query)
	if err != nil {
		logger.Warn("Assistant remote search failed", "query", query, "error", err.Error())
	} else if len(fresh) > 0 {
		return r.composeOrFallback(query, fresh)
	}

	return r.botMessage(r.fallbackText(query))
}

// searchFresh queries the provider with the raw input and normalizes the
// results.
func (r *Responder) searchFresh(ctx context.Context, query string) ([]core.Article, error) {
	raw, err := r.provider.Search(ctx, query, r.pageSize)
	if err != nil {
		return nil, err
	}
	return r.normalizer.Normalize(raw, searchIDPrefix), nil
}

// composeOrFallback ranks the candidates and formats a multi-article answer;
// when ranking discards everything (the pre-filter also matches on category
// text, which ranking ignores) the canned fallback is used instead.
func (r *Responder) composeOrFallback(query string, candidates []core.Article) core.ChatMessage {
	ranked := relevance.Rank(query, candidates)
	if len(ranked) == 0 {
		return r.botMessage(r.fallbackText(query))
	}
	return r.botMessage(formatAnswer(query, ranked))
}

// botMessage wraps text as an assistant chat message.
func (r *Responder) botMessage(text string) core.ChatMessage {
	return core.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    core.SenderBot,
		Timestamp: r.now().UnixMilli(),
	}
}
