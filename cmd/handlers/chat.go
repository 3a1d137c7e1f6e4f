package handlers

import (
	"github.com/spf13/cobra"

	"marketbrief/internal/assistant"
	"marketbrief/internal/config"
	"marketbrief/internal/feed"
	"marketbrief/internal/interactive"
)

// NewChatCmd creates the chat command for an interactive assistant session
func NewChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive trading assistant session",
		Long: `Start an interactive chat session with the trading assistant.

The session loads a fresh news feed first and answers questions against it.
Type /help inside the session for commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			provider := newProvider(cfg)

			svc := feed.NewService(provider)
			svc.SetLimits(cfg.Feed.PageSize, cfg.Feed.MaxArticles)
			articles := svc.Refresh(cmd.Context())

			responder := assistant.NewResponder(provider)
			responder.SetPageSize(cfg.Assistant.SearchPageSize)

			handler := interactive.NewChatHandler(responder, articles)
			handler.StartChatSession()
			return handler.RunChatLoop()
		},
	}
}
