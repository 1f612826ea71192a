// Package api provides HTTP handlers for the chat widget API.
package api

import (
	"encoding/json"
	"net/http"

	"carbonbuddy/internal/chat"
	"carbonbuddy/internal/session"
)

// maxRequestBodySize is the maximum allowed chat request body size (64KB).
const maxRequestBodySize = 64 << 10

// Handler serves the JSON API backing the chat widget.
type Handler struct {
	sessions *session.Manager
	resolver *chat.Resolver
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(sessions *session.Manager, resolver *chat.Resolver) *Handler {
	return &Handler{
		sessions: sessions,
		resolver: resolver,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
