package newsapi

import (
	"context"

	"marketbrief/internal/core"
)

// MockProvider implements Provider for testing purposes.
type MockProvider struct {
	name     string
	articles []core.RawArticle
	err      error

	// LastQuery records the most recent search term, for assertions.
	LastQuery string
	// Calls counts Search invocations.
	Calls int
}

// NewMockProvider creates a mock provider that returns no articles.
func NewMockProvider() *MockProvider {
	return &MockProvider{name: "Mock"}
}

// Name returns the name of this provider.
func (m *MockProvider) Name() string {
	return m.name
}

// Search returns the configured articles or error, honoring pageSize.
func (m *MockProvider) Search(ctx context.Context, query string, pageSize int) ([]core.RawArticle, error) {
	m.LastQuery = query
	m.Calls++

	if m.err != nil {
		return nil, m.err
	}

	articles := m.articles
	if pageSize > 0 && len(articles) > pageSize {
		articles = articles[:pageSize]
	}
	return articles, nil
}

// SetArticles configures the raw articles returned by Search.
func (m *MockProvider) SetArticles(articles []core.RawArticle) {
	m.articles = articles
}

// SetError makes every Search call fail with err.
func (m *MockProvider) SetError(err error) {
	m.err = err
}

// SetName allows customization of the provider name for testing.
func (m *MockProvider) SetName(name string) {
	m.name = name
}
