package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marketbrief/internal/config"
	"marketbrief/internal/feed"
)

// NewFeedCmd creates the feed command for fetching and printing headlines
func NewFeedCmd() *cobra.Command {
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch and print the current financial news feed",
		Long: `Fetch a fresh batch of financial headlines, classify each by category and
sentiment, and print them with extracted key points.

When the news provider is unreachable or no API key is configured, a built-in
sample dataset is shown instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(cmd, category, limit)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show articles in this category (Stocks, Crypto, Tech, Markets, Business)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of articles to print (default from config)")

	return cmd
}

func runFeed(cmd *cobra.Command, category string, limit int) error {
	cfg := config.Get()

	svc := feed.NewService(newProvider(cfg))
	svc.SetLimits(cfg.Feed.PageSize, cfg.Feed.MaxArticles)
	if limit > 0 {
		svc.SetLimits(cfg.Feed.PageSize, limit)
	}

	articles := svc.Refresh(cmd.Context())

	var output strings.Builder
	shown := 0
	for _, article := range articles {
		if category != "" && !strings.EqualFold(string(article.Category), category) {
			continue
		}
		shown++

		output.WriteString(fmt.Sprintf("📰 %s\n", article.Title))
		output.WriteString(fmt.Sprintf("   %s · %s · %s · %s\n", article.Source, article.Category, article.Sentiment, article.TimeLabel))
		output.WriteString(fmt.Sprintf("   %s\n", article.Summary))
		for _, point := range article.KeyPoints {
			output.WriteString(fmt.Sprintf("   • %s\n", point))
		}
		output.WriteString("\n")
	}

	if shown == 0 {
		fmt.Println("No articles matched.")
		return nil
	}

	fmt.Printf("%d articles:\n\n%s", shown, output.String())
	return nil
}
