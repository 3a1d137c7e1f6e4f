package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"marketbrief/internal/config"
	"marketbrief/internal/core"
	"marketbrief/internal/ticker"
)

// NewTickerCmd creates the ticker command for printing simulated quotes
func NewTickerCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "ticker",
		Short: "Show simulated market quotes",
		Long: `Print the simulated market ticker (SPY, BTC, ETH).

With --watch the quotes update on the configured interval until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := ticker.NewBoard()
			printQuotes(board.Quotes())

			if !watch {
				return nil
			}

			board.Run(cmd.Context(), config.Get().Ticker.Interval, func(quotes []core.MarketQuote) {
				printQuotes(quotes)
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep updating quotes until interrupted")

	return cmd
}

func printQuotes(quotes []core.MarketQuote) {
	for _, q := range quotes {
		arrow := "📈"
		if q.Change < 0 {
			arrow = "📉"
		}
		fmt.Printf("%s %-4s $%.2f %+.2f%%\n", arrow, q.Symbol, q.Price, q.Change)
	}
	fmt.Println()
}
