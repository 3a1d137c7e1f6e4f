package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marketbrief/internal/assistant"
	"marketbrief/internal/config"
	"marketbrief/internal/feed"
)

// NewAskCmd creates the ask command for one-shot assistant questions
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the trading assistant a one-shot question",
		Long: `Ask the trading assistant a question about current financial news.

The assistant answers from the freshly loaded feed when it can, searches the
provider for matching headlines otherwise, and falls back to a general reply
when nothing relevant is found.

Examples:
  marketbrief ask "what's happening with bitcoin"
  marketbrief ask tesla earnings`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runAsk(cmd *cobra.Command, query string) error {
	cfg := config.Get()
	provider := newProvider(cfg)

	svc := feed.NewService(provider)
	svc.SetLimits(cfg.Feed.PageSize, cfg.Feed.MaxArticles)
	articles := svc.Refresh(cmd.Context())

	responder := assistant.NewResponder(provider)
	responder.SetPageSize(cfg.Assistant.SearchPageSize)

	reply := responder.Respond(cmd.Context(), query, articles)
	fmt.Println(reply.Text)
	return nil
}
