package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"carbonbuddy/internal/chat"
	"carbonbuddy/internal/domain"
	"carbonbuddy/internal/identity"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply to one chat exchange.
type ChatResponse struct {
	Reply       string `json:"reply"`
	Mode        string `json:"mode"`
	Notice      string `json:"notice,omitempty"`
	CarbonScore int    `json:"carbon_score"`
	HistoryLen  int    `json:"history_len"`
}

// RegisterRoutes registers the chat API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Get("/history", h.History)
		r.Post("/reset", h.Reset)
		r.Get("/config", h.GetConfig)
	})
}

// Chat resolves one user message and appends the exchange to the caller's
// transcript. Every request gets a reply; remote failures surface only as a
// notice alongside the canned answer.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	clientID := identity.ClientIDFromContext(r.Context())
	if clientID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChatRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			Error(w, http.StatusRequestEntityTooLarge, "message too large")
			return
		}
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		Error(w, http.StatusBadRequest, "message cannot be empty")
		return
	}

	history := h.sessions.History(clientID)
	reply := h.resolver.Resolve(r.Context(), history, message)
	historyLen := h.sessions.AppendExchange(clientID, message, reply.Text)

	JSON(w, http.StatusOK, ChatResponse{
		Reply:       reply.Text,
		Mode:        string(reply.Mode),
		Notice:      reply.Notice,
		CarbonScore: chat.CarbonScore(historyLen),
		HistoryLen:  historyLen,
	})
}

// History returns the caller's transcript and current carbon score.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	clientID := identity.ClientIDFromContext(r.Context())
	if clientID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	history := h.sessions.History(clientID)
	JSON(w, http.StatusOK, map[string]interface{}{
		"messages":     history,
		"carbon_score": chat.CarbonScore(len(history)),
		"mode":         string(h.resolver.Mode()),
	})
}

// Reset discards the caller's conversation.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	clientID := identity.ClientIDFromContext(r.Context())
	if clientID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.sessions.Reset(clientID)
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetConfig returns the server configuration for the frontend.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"online": h.resolver.Mode() == domain.ModeOnline,
		"model":  h.resolver.Model(),
	})
}
