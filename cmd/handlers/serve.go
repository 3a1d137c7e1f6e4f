package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"marketbrief/internal/assistant"
	"marketbrief/internal/config"
	"marketbrief/internal/feed"
	"marketbrief/internal/logger"
	"marketbrief/internal/server"
)

// NewServeCmd creates the serve command for starting the HTTP server
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the marketbrief HTTP server.

The server provides:
  • REST API for the news feed, trending keywords and ticker quotes
  • Chat endpoint backed by the trading assistant
  • Health check endpoint

Examples:
  # Start server on default port 8080
  marketbrief serve

  # Start on custom port
  marketbrief serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	log := logger.Get()
	cfg := config.Get()

	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	provider := newProvider(cfg)

	feedSvc := feed.NewService(provider)
	feedSvc.SetLimits(cfg.Feed.PageSize, cfg.Feed.MaxArticles)

	responder := assistant.NewResponder(provider)
	responder.SetPageSize(cfg.Assistant.SearchPageSize)

	srv := server.New(feedSvc, responder, serverCfg)

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info(fmt.Sprintf("Server listening on http://%s:%d", serverCfg.Host, serverCfg.Port))
		log.Info("Press Ctrl+C to stop")
		serverErrors <- srv.Start(serveCtx, cfg.Ticker.Interval)
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("Server shutdown initiated", "signal", sig.String())
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed, forcing close", "error", err)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Info("Server stopped successfully")
	}

	return nil
}
