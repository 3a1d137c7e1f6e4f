package feed

import (
	"context"
	"math/rand"
	"time"

	"marketbrief/internal/core"
	"marketbrief/internal/logger"
	"marketbrief/internal/newsapi"
	"marketbrief/internal/normalize"
)

// Service refreshes the article collection from the news provider. A refresh
// never fails: provider errors and empty responses degrade to the built-in
// sample dataset.
type Service struct {
	provider    newsapi.Provider
	normalizer  *normalize.Normalizer
	pageSize    int
	maxArticles int
	pickQuery   func(n int) int // Index into newsapi.FeedQueries
	now         func() time.Time
}

// NewService creates a feed service with the default page size (20 requested,
// 15 kept) and a seeded random query rotation.
func NewService(provider newsapi.Provider) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		provider:    provider,
		normalizer:  normalize.New(),
		pageSize:    20,
		maxArticles: 15,
		pickQuery:   rng.Intn,
		now:         time.Now,
	}
}

// SetLimits overrides the provider page size and the normalized batch cap.
func (s *Service) SetLimits(pageSize, maxArticles int) {
	if pageSize > 0 {
		s.pageSize = pageSize
	}
	if maxArticles > 0 {
		s.maxArticles = maxArticles
	}
}

// SetQueryPicker injects the query-rotation source, used by tests to pin the
// search term.
func (s *Service) SetQueryPicker(pick func(n int) int) {
	s.pickQuery = pick
}

// SetClock injects the clock used for sample-article timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.normalizer = normalize.NewWithClock(s.normalizer.Lexicon(), now)
}

// Refresh fetches a fresh batch for one of the rotating feed queries,
// normalizes it and truncates to the batch cap. On any provider failure, or
// when nothing usable comes back, the sample dataset is returned instead.
// The returned slice replaces the caller's collection wholesale.
func (s *Service) Refresh(ctx context.Context) []core.Article {
	query := newsapi.FeedQueries[s.pickQuery(len(newsapi.FeedQueries))]

	raw, err := s.provider.Search(ctx, query, s.pageSize)
	if err != nil {
		logger.Warn("Feed refresh failed, using sample articles", "query", query, "error", err.Error())
		return newsapi.SampleArticles(s.now())
	}

	articles := s.normalizer.Normalize(raw, "")
	if len(articles) == 0 {
		logger.Warn("Feed refresh returned nothing usable, using sample articles", "query", query)
		return newsapi.SampleArticles(s.now())
	}

	if len(articles) > s.maxArticles {
		articles = articles[:s.maxArticles]
	}

	logger.Info("Feed refreshed", "query", query, "articles", len(articles))
	return articles
}
