package ticker

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"marketbrief/internal/core"
)

// DefaultInterval is how often the simulated quotes advance.
const DefaultInterval = 30 * time.Second

// Board holds the simulated quotes for the three tracked instruments. Prices
// drift by a bounded random delta per tick; there is no real market feed
// behind them.
type Board struct {
	mu        sync.Mutex
	quotes    []core.MarketQuote
	randFloat func() float64 // Uniform in [0, 1)
}

// NewBoard creates a board with the built-in seed prices.
func NewBoard() *Board {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Board{
		quotes: []core.MarketQuote{
			{Symbol: "SPY", Price: 445.23, Change: 1.2},
			{Symbol: "BTC", Price: 48234, Change: 2.8},
			{Symbol: "ETH", Price: 2543, Change: -0.5},
		},
		randFloat: rng.Float64,
	}
}

// SetRand injects the random source, used by tests for determinism.
func (b *Board) SetRand(randFloat func() float64) {
	b.randFloat = randFloat
}

// Quotes returns a copy of the current quotes.
func (b *Board) Quotes() []core.MarketQuote {
	b.mu.Lock()
	defer b.mu.Unlock()

	quotes := make([]core.MarketQuote, len(b.quotes))
	copy(quotes, b.quotes)
	return quotes
}

// Tick advances every quote by its instrument-specific random walk: SPY moves
// within ±1 with a change in [-1, 2), BTC within ±100 with a change in
// [-2, 3), ETH within ±25 with a change in [-1.5, 2.5). Changes are rounded
// to two decimals.
func (b *Board) Tick() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.quotes {
		switch b.quotes[i].Symbol {
		case "SPY":
			b.quotes[i].Price += (b.randFloat() - 0.5) * 2
			b.quotes[i].Change = round2(b.randFloat()*3 - 1)
		case "BTC":
			b.quotes[i].Price += (b.randFloat() - 0.5) * 200
			b.quotes[i].Change = round2(b.randFloat()*5 - 2)
		case "ETH":
			b.quotes[i].Price += (b.randFloat() - 0.5) * 50
			b.quotes[i].Change = round2(b.randFloat()*4 - 1.5)
		}
	}
}

// Run ticks the board on the given interval until the context is canceled,
// publishing a snapshot after every tick. It blocks; run it in a goroutine.
func (b *Board) Run(ctx context.Context, interval time.Duration, publish func([]core.MarketQuote)) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Tick()
			if publish != nil {
				publish(b.Quotes())
			}
		}
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
