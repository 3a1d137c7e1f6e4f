package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marketbrief/internal/core"
	"marketbrief/internal/feed"
	"marketbrief/internal/ticker"
	"marketbrief/internal/trending"
)

// model holds the state of the feed browser: the article collection, the
// reader's bookmarks and read history, and the ticker quotes shown in the
// header strip.
type model struct {
	feedSvc *feed.Service
	board   *ticker.Board
	trends  *trending.Aggregator

	articles    []core.Article
	bookmarks   []string
	readHistory []string
	quotes      []core.MarketQuote

	selectedIdx int
	refreshing  bool
	width       int
	height      int
	quitting    bool
}

// refreshedMsg carries a fresh article batch back into the update loop.
type refreshedMsg struct {
	articles []core.Article
}

// tickMsg carries updated ticker quotes.
type tickMsg struct {
	quotes []core.MarketQuote
}

// InitialModel returns the initial state of the TUI model.
func InitialModel(feedSvc *feed.Service) model {
	return model{
		feedSvc:     feedSvc,
		board:       ticker.NewBoard(),
		trends:      trending.NewAggregator(),
		articles:    []core.Article{},
		selectedIdx: 0,
	}
}

// Init kicks off the first feed refresh.
func (m model) Init() tea.Cmd {
	return m.refreshCmd()
}

// refreshCmd fetches a fresh batch off the update loop. The refresh never
// fails; on provider trouble the sample dataset comes back instead.
func (m model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{articles: m.feedSvc.Refresh(context.Background())}
	}
}

// tickCmd advances the ticker board once.
func (m model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		m.board.Tick()
		return tickMsg{quotes: m.board.Quotes()}
	}
}

// Update handles messages and updates the model accordingly.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case refreshedMsg:
		m.articles = msg.articles
		m.refreshing = false
		if m.selectedIdx >= len(m.articles) {
			m.selectedIdx = 0
		}
		return m, m.tickCmd()

	case tickMsg:
		m.quotes = msg.quotes

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "down", "j":
			if m.selectedIdx < len(m.articles)-1 {
				m.selectedIdx++
			}
		case "enter":
			if m.selectedIdx < len(m.articles) {
				m.readHistory = feed.MarkRead(m.readHistory, m.articles[m.selectedIdx].ID)
			}
		case "b":
			if m.selectedIdx < len(m.articles) {
				m.bookmarks = feed.ToggleBookmark(m.bookmarks, m.articles[m.selectedIdx].ID)
			}
		case "r":
			if !m.refreshing {
				m.refreshing = true
				return m, m.refreshCmd()
			}
		case "t":
			return m, m.tickCmd()
		}
	}

	return m, nil
}

// View renders the TUI.
func (m model) View() string {
	if m.quitting {
		return "Quitting...\n"
	}

	docStyle := lipgloss.NewStyle().Margin(1, 2)
	tickerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/2 - 5)
	detailStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/2 - 5)

	tickerLine := m.renderTickerStrip()

	listContent := "Market News\n\n"
	if m.refreshing {
		listContent += "Refreshing..."
	} else if len(m.articles) == 0 {
		listContent += "No articles loaded. Press r to refresh."
	} else {
		for i, article := range m.articles {
			cursor := " "
			if i == m.selectedIdx {
				cursor = ">"
			}
			marker := " "
			if feed.IsBookmarked(m.bookmarks, article.ID) {
				marker = "★"
			}
			listContent += fmt.Sprintf("%s%s [%s] %s\n", cursor, marker, article.Category, article.Title)
		}
	}

	detailContent := m.renderDetail()

	leftPane := listStyle.Render(listContent)
	rightPane := detailStyle.Render(detailContent)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	help := "\n\n[↑/k] Up | [↓/j] Down | [enter] Read | [b] Bookmark | [r] Refresh | [t] Tick | [q] Quit"

	return docStyle.Render(tickerStyle.Render(tickerLine) + "\n\n" + mainContent + help)
}

// renderTickerStrip formats the quote header, e.g. "SPY $445.23 +1.20%".
func (m model) renderTickerStrip() string {
	quotes := m.quotes
	if len(quotes) == 0 {
		quotes = m.board.Quotes()
	}

	var parts []string
	for _, q := range quotes {
		sign := "+"
		if q.Change < 0 {
			sign = ""
		}
		parts = append(parts, fmt.Sprintf("%s $%.2f %s%.2f%%", q.Symbol, q.Price, sign, q.Change))
	}
	return strings.Join(parts, "   ")
}

// renderDetail shows the selected article plus the collection's trending
// keywords underneath.
func (m model) renderDetail() string {
	var b strings.Builder

	if m.selectedIdx >= len(m.articles) {
		b.WriteString("No article selected.")
	} else {
		article := m.articles[m.selectedIdx]
		b.WriteString(article.Title + "\n\n")
		b.WriteString(fmt.Sprintf("%s · %s · %s %s\n\n", article.Source, article.Category, article.Sentiment, article.TimeLabel))
		b.WriteString(article.Summary + "\n")
		if len(article.KeyPoints) > 0 {
			b.WriteString("\nKey points:\n")
			for _, point := range article.KeyPoints {
				b.WriteString("  • " + point + "\n")
			}
		}
	}

	topics := m.trends.Topics(m.articles)
	if len(topics) > 0 {
		b.WriteString("\nTrending: ")
		var parts []string
		for _, topic := range topics {
			parts = append(parts, fmt.Sprintf("%s (%d)", topic.Keyword, topic.Count))
		}
		b.WriteString(strings.Join(parts, ", "))
	}

	return b.String()
}

// StartTUI initializes and starts the Bubble Tea application.
func StartTUI(feedSvc *feed.Service) {
	p := tea.NewProgram(InitialModel(feedSvc), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
