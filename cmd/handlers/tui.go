package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"marketbrief/internal/config"
	"marketbrief/internal/feed"
	"marketbrief/internal/tui"
)

// NewTUICmd creates the TUI command
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the Marketbrief Terminal User Interface",
		Long:  `Launch the Marketbrief TUI to browse headlines, bookmark articles and watch the ticker.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Launching TUI...")

			cfg := config.Get()
			svc := feed.NewService(newProvider(cfg))
			svc.SetLimits(cfg.Feed.PageSize, cfg.Feed.MaxArticles)

			tui.StartTUI(svc)
		},
	}
}
