package chat

import (
	"context"
	"log/slog"

	"carbonbuddy/internal/domain"
	"carbonbuddy/internal/provider"
)

// Reply is the outcome of resolving one user message.
type Reply struct {
	Text string `json:"text"`
	// Mode is the path that actually produced this reply. A remote failure
	// degrades the single call to offline without flipping the resolver's
	// persistent mode.
	Mode domain.Mode `json:"mode"`
	// Notice carries a non-fatal, user-visible error notice when the remote
	// call failed and the canned reply was used instead.
	Notice string `json:"notice,omitempty"`
}

// Resolver produces a reply string for every user message. It never returns
// an error: remote failures degrade to the offline matcher for that call only.
type Resolver struct {
	provider provider.Provider // nil means offline mode
}

// NewResolver creates a resolver. A nil provider pins the resolver to
// offline mode for the whole session.
func NewResolver(p provider.Provider) *Resolver {
	return &Resolver{provider: p}
}

// Mode returns the resolver's persistent mode, fixed at startup.
func (r *Resolver) Mode() domain.Mode {
	if r.provider == nil {
		return domain.ModeOffline
	}
	return domain.ModeOnline
}

// Model returns the remote model name, or empty in offline mode.
func (r *Resolver) Model() string {
	if r.provider == nil {
		return ""
	}
	return r.provider.Model()
}

// Resolve produces a reply for query given the transcript so far. The
// transcript must not yet include the query itself; the provider appends it
// as the final user turn.
func (r *Resolver) Resolve(ctx context.Context, history []domain.Message, query string) Reply {
	if r.provider == nil {
		return Reply{Text: Match(query), Mode: domain.ModeOffline}
	}

	text, err := r.provider.Send(ctx, history, query)
	if err != nil {
		slog.Error("Remote model call failed, using offline reply", "error", err)
		return Reply{
			Text:   Match(query),
			Mode:   domain.ModeOffline,
			Notice: "An error occurred while getting the response; answered offline.",
		}
	}
	return Reply{Text: text, Mode: domain.ModeOnline}
}
