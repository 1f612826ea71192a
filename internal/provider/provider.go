// Package provider implements clients for hosted conversational models.
//
// The resolver talks to a Provider and stays agnostic of which vendor SDK
// sits behind it; adding a new backend means implementing the interface and
// extending Select.
package provider

import (
	"context"
	"log/slog"

	"carbonbuddy/internal/config"
	"carbonbuddy/internal/domain"
)

// Provider sends one conversational turn to a hosted model.
type Provider interface {
	// Send forwards the transcript plus the new user query and returns the
	// assistant's reply text. The transcript carries the remote conversation
	// context across calls.
	Send(ctx context.Context, history []domain.Message, query string) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Select decides the session's mode from configuration. It runs exactly once
// at startup: a nil return means offline mode for the whole session.
//
// Absent credential is a handled state, not an error. A credential that is
// present but fails client construction degrades to offline with a warning.
func Select(cfg *config.Config) Provider {
	if cfg.APIKey == "" {
		slog.Info("Running in offline mode, no API key found; the widget will use canned replies")
		return nil
	}

	p, err := NewOpenAIProvider(cfg.APIBaseURL, cfg.APIKey, cfg.ModelName)
	if err != nil {
		slog.Warn("Could not initialize model client, falling back to offline mode", "error", err)
		return nil
	}

	slog.Info("Remote model client initialized", "model", p.Model())
	return p
}
