package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"carbonbuddy/internal/chat"
	"carbonbuddy/internal/domain"
	"carbonbuddy/internal/identity"
)

// WSHandler serves the chat exchange over a WebSocket connection. The widget
// prefers this live path and falls back to the JSON endpoints when the
// upgrade fails.
type WSHandler struct {
	sessions      sessionStore
	resolver      *chat.Resolver
	allowedOrigin string
	isDev         bool
}

// sessionStore is the subset of the session manager the WS handler needs.
type sessionStore interface {
	History(clientID string) []domain.Message
	AppendExchange(clientID, userText, assistantText string) int
	Reset(clientID string)
}

// NewWSHandler creates a new WebSocket chat handler.
func NewWSHandler(sessions sessionStore, resolver *chat.Resolver, allowedOrigin string, isDev bool) *WSHandler {
	return &WSHandler{
		sessions:      sessions,
		resolver:      resolver,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// wsRequest represents an inbound WebSocket frame.
type wsRequest struct {
	Type    string `json:"type"` // "message" or "reset"
	Content string `json:"content,omitempty"`
}

// wsReply represents an outbound WebSocket frame.
type wsReply struct {
	Type        string `json:"type"` // "reply", "reset_ok" or "error"
	Content     string `json:"content,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Notice      string `json:"notice,omitempty"`
	CarbonScore int    `json:"carbon_score,omitempty"`
	HistoryLen  int    `json:"history_len,omitempty"`
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientID := identity.ClientIDFromContext(r.Context())
	if clientID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "client_id", clientID)
		return
	}
	defer func() {
		_ = ws.Close(websocket.StatusNormalClosure, "session ended")
	}()

	slog.Info("WebSocket chat connected", "client_id", clientID, "ip", r.RemoteAddr)
	h.readLoop(r.Context(), ws, clientID)
}

// readLoop processes frames until the client disconnects or ctx ends.
func (h *WSHandler) readLoop(ctx context.Context, ws *websocket.Conn, clientID string) {
	for {
		var req wsRequest
		if err := wsjson.Read(ctx, ws, &req); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				return
			}
			slog.Debug("WebSocket read ended", "client_id", clientID, "error", err)
			return
		}

		switch req.Type {
		case "message":
			h.handleMessage(ctx, ws, clientID, req.Content)
		case "reset":
			h.sessions.Reset(clientID)
			h.write(ctx, ws, clientID, wsReply{Type: "reset_ok", CarbonScore: chat.CarbonScore(0)})
		default:
			h.write(ctx, ws, clientID, wsReply{Type: "error", Content: "unknown message type"})
		}
	}
}

func (h *WSHandler) handleMessage(ctx context.Context, ws *websocket.Conn, clientID, content string) {
	message := strings.TrimSpace(content)
	if message == "" {
		h.write(ctx, ws, clientID, wsReply{Type: "error", Content: "message cannot be empty"})
		return
	}

	history := h.sessions.History(clientID)
	reply := h.resolver.Resolve(ctx, history, message)
	historyLen := h.sessions.AppendExchange(clientID, message, reply.Text)

	h.write(ctx, ws, clientID, wsReply{
		Type:        "reply",
		Content:     reply.Text,
		Mode:        string(reply.Mode),
		Notice:      reply.Notice,
		CarbonScore: chat.CarbonScore(historyLen),
		HistoryLen:  historyLen,
	})
}

func (h *WSHandler) write(ctx context.Context, ws *websocket.Conn, clientID string, reply wsReply) {
	if err := wsjson.Write(ctx, ws, reply); err != nil {
		slog.Debug("WebSocket write error", "client_id", clientID, "error", err)
	}
}

// checkOrigin validates the Origin header against the configured frontend.
// Development mode accepts any origin for local Vite-style setups.
func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if h.isDev || h.allowedOrigin == "" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || strings.HasPrefix(origin, h.allowedOrigin)
}
