package ticker

import (
	"context"
	"testing"
	"time"

	"marketbrief/internal/core"
)

func TestNewBoardSeedQuotes(t *testing.T) {
	board := NewBoard()
	quotes := board.Quotes()

	if len(quotes) != 3 {
		t.Fatalf("Expected 3 instruments, got %d", len(quotes))
	}
	if quotes[0].Symbol != "SPY" || quotes[0].Price != 445.23 {
		t.Errorf("Unexpected SPY seed: %+v", quotes[0])
	}
	if quotes[1].Symbol != "BTC" || quotes[1].Price != 48234 {
		t.Errorf("Unexpected BTC seed: %+v", quotes[1])
	}
	if quotes[2].Symbol != "ETH" || quotes[2].Price != 2543 {
		t.Errorf("Unexpected ETH seed: %+v", quotes[2])
	}
}

func TestTickDeterministicUnderFixedRand(t *testing.T) {
	board := NewBoard()
	board.SetRand(func() float64 { return 0.5 })

	board.Tick()
	quotes := board.Quotes()

	// rand=0.5 keeps prices unchanged and fixes each change mid-range.
	if quotes[0].Price != 445.23 || quotes[0].Change != 0.5 {
		t.Errorf("Unexpected SPY after tick: %+v", quotes[0])
	}
	if quotes[1].Price != 48234 || quotes[1].Change != 0.5 {
		t.Errorf("Unexpected BTC after tick: %+v", quotes[1])
	}
	if quotes[2].Price != 2543 || quotes[2].Change != 0.5 {
		t.Errorf("Unexpected ETH after tick: %+v", quotes[2])
	}
}

func TestQuotesReturnsCopy(t *testing.T) {
	board := NewBoard()

	quotes := board.Quotes()
	quotes[0].Price = 0

	if board.Quotes()[0].Price == 0 {
		t.Error("Quotes must return a copy, not internal state")
	}
}

func TestRunPublishesAndStops(t *testing.T) {
	board := NewBoard()
	board.SetRand(func() float64 { return 0.5 })

	ctx, cancel := context.WithCancel(context.Background())
	published := make(chan int, 16)

	done := make(chan struct{})
	go func() {
		board.Run(ctx, time.Millisecond, func(quotes []core.MarketQuote) { published <- len(quotes) })
		close(done)
	}()

	select {
	case n := <-published:
		if n != 3 {
			t.Errorf("Expected snapshots of 3 quotes, got %d", n)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a published snapshot")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run must stop when the context is canceled")
	}
}
