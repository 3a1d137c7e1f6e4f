package relevance

import (
	"sort"
	"strings"

	"marketbrief/internal/core"
)

// maxRanked caps how many articles a ranked result contains.
const maxRanked = 3

// minKeywordLength is the shortest query token considered meaningful.
const minKeywordLength = 3

// Keywords tokenizes a free-text query on whitespace, lowercases and keeps
// distinct tokens of length > 2.
func Keywords(query string) []string {
	seen := make(map[string]bool)
	var keywords []string

	for _, token := range strings.Fields(strings.ToLower(query)) {
		if len(token) < minKeywordLength || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return keywords
}

// score counts how many distinct keywords occur as substrings in text.
func score(text string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			hits++
		}
	}
	return hits
}

// Rank scores candidate articles against a query by keyword overlap over
// lowercased title+summary, discards zero-score articles and returns the top 3
// by descending score. Equal scores keep the candidates' original relative
// order.
func Rank(query string, articles []core.Article) []core.Article {
	keywords := Keywords(query)
	if len(keywords) == 0 {
		return nil
	}

	type scored struct {
		article core.Article
		score   int
	}

	var matches []scored
	for _, article := range articles {
		searchText := strings.ToLower(article.Title + " " + article.Summary)
		if s := score(searchText, keywords); s > 0 {
			matches = append(matches, scored{article: article, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > maxRanked {
		matches = matches[:maxRanked]
	}

	ranked := make([]core.Article, len(matches))
	for i, m := range matches {
		ranked[i] = m.article
	}
	return ranked
}

// MatchesAny reports whether any query keyword occurs in the article's
// title, summary or category text. This is the cheap pre-filter the assistant
// runs before ranking.
func MatchesAny(query string, article core.Article) bool {
	keywords := Keywords(query)
	searchText := strings.ToLower(article.Title + " " + article.Summary + " " + string(article.Category))
	return score(searchText, keywords) > 0
}

// FilterByKeywords keeps the articles for which MatchesAny holds, preserving
// order.
func FilterByKeywords(query string, articles []core.Article) []core.Article {
	var matched []core.Article
	for _, article := range articles {
		if MatchesAny(query, article) {
			matched = append(matched, article)
		}
	}
	return matched
}

// FilterFeed applies the feed's category and free-text filters: category
// equality (empty or "All" passes everything) plus unscored substring
// containment of the search text in title or summary. A pure filter, no
// ranking.
func FilterFeed(articles []core.Article, category string, search string) []core.Article {
	lowerSearch := strings.ToLower(search)

	var filtered []core.Article
	for _, article := range articles {
		if category != "" && category != "All" && string(article.Category) != category {
			continue
		}
		if lowerSearch != "" &&
			!strings.Contains(strings.ToLower(article.Title), lowerSearch) &&
			!strings.Contains(strings.ToLower(article.Summary), lowerSearch) {
			continue
		}
		filtered = append(filtered, article)
	}
	return filtered
}
