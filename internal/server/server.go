package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"marketbrief/internal/assistant"
	"marketbrief/internal/config"
	"marketbrief/internal/core"
	"marketbrief/internal/feed"
	"marketbrief/internal/logger"
	"marketbrief/internal/ticker"
	"marketbrief/internal/trending"
)

// Server exposes the news engine over HTTP. It owns the current article
// collection: a refresh replaces it wholesale (last write wins, matching the
// app's no-superseding model), and the chat endpoint answers against a
// snapshot of it.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     config.Server
	log        *slog.Logger

	feed      *feed.Service
	responder *assistant.Responder
	trends    *trending.Aggregator
	board     *ticker.Board

	mu       sync.RWMutex
	articles []core.Article
}

// New creates a new HTTP server instance.
func New(feedSvc *feed.Service, responder *assistant.Responder, cfg config.Server) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		log:       logger.Get(),
		feed:      feedSvc,
		responder: responder,
		trends:    trending.NewAggregator(),
		board:     ticker.NewBoard(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	if s.config.CORS.Enabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/feed", s.handleFeed)
		r.Post("/feed/refresh", s.handleFeedRefresh)
		r.Get("/trending", s.handleTrending)
		r.Get("/ticker", s.handleTicker)
		r.Post("/chat", s.handleChat)
	})
}

// Start refreshes the feed, launches the ticker driver and serves until the
// context is canceled or the listener fails.
func (s *Server) Start(ctx context.Context, tickerInterval time.Duration) error {
	s.setArticles(s.feed.Refresh(ctx))

	go s.board.Run(ctx, tickerInterval, nil)

	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing).
func (s *Server) Router() *chi.Mux {
	return s.router
}

// setArticles replaces the article collection.
func (s *Server) setArticles(articles []core.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = articles
}

// snapshot returns the current article collection.
func (s *Server) snapshot() []core.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles
}
