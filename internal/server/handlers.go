package server

import (
	"encoding/json"
	"net/http"

	"marketbrief/internal/core"
	"marketbrief/internal/relevance"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status   string `json:"status"`
	Articles int    `json:"articles"`
}

// FeedResponse is the /api/feed payload.
type FeedResponse struct {
	Articles []core.Article `json:"articles"`
	Total    int            `json:"total"`
}

// ChatRequest is the /api/chat request body.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse carries the assistant reply both as raw markdown-ish text and
// as rendered HTML for web clients.
type ChatResponse struct {
	Message core.ChatMessage `json:"message"`
	HTML    string           `json:"html"`
}

// handleHealth handles the /health endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Articles: len(s.snapshot()),
	})
}

// handleFeed handles GET /api/feed with optional category and q filters.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	articles := s.snapshot()

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")
	filtered := relevance.FilterFeed(articles, category, search)

	s.respondJSON(w, http.StatusOK, FeedResponse{
		Articles: filtered,
		Total:    len(filtered),
	})
}

// handleFeedRefresh handles POST /api/feed/refresh. The refresh never fails;
// on provider trouble the sample dataset replaces the collection.
func (s *Server) handleFeedRefresh(w http.ResponseWriter, r *http.Request) {
	articles := s.feed.Refresh(r.Context())
	s.setArticles(articles)

	s.respondJSON(w, http.StatusOK, FeedResponse{
		Articles: articles,
		Total:    len(articles),
	})
}

// handleTrending handles GET /api/trending.
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	topics := s.trends.Topics(s.snapshot())
	s.respondJSON(w, http.StatusOK, map[string]any{
		"topics": topics,
	})
}

// handleTicker handles GET /api/ticker.
func (s *Server) handleTicker(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"quotes": s.board.Quotes(),
	})
}

// handleChat handles POST /api/chat. The assistant always answers; provider
// failures degrade to a canned reply, never to an error status.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "request body must be JSON with a non-empty query")
		return
	}

	message := s.responder.Respond(r.Context(), req.Query, s.snapshot())

	s.respondJSON(w, http.StatusOK, ChatResponse{
		Message: message,
		HTML:    renderMarkdown(message.Text),
	})
}

// respondJSON writes a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError writes a JSON error payload.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
