package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"marketbrief/internal/config"
	"marketbrief/internal/feed"
	"marketbrief/internal/trending"
)

// NewTrendingCmd creates the trending command
func NewTrendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show trending keywords across current headlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()

			svc := feed.NewService(newProvider(cfg))
			svc.SetLimits(cfg.Feed.PageSize, cfg.Feed.MaxArticles)
			articles := svc.Refresh(cmd.Context())

			topics := trending.NewAggregator().Topics(articles)
			if len(topics) == 0 {
				fmt.Println("No trending topics found.")
				return nil
			}

			fmt.Println("🔥 Trending now:")
			for i, topic := range topics {
				fmt.Printf("%2d. %s (%d mentions)\n", i+1, topic.Keyword, topic.Count)
			}
			return nil
		},
	}
}
