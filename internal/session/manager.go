// Package session provides in-memory conversation session management.
//
// Sessions live only for the process lifetime; nothing is written to disk
// and nothing survives a restart.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"carbonbuddy/internal/domain"
)

const sweepInterval = 5 * time.Minute

// Manager owns all live sessions, keyed by anonymous client ID. All
// transcript mutation goes through the manager so appends stay ordered even
// when two tabs share a client ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
}

// NewManager creates a session manager evicting sessions idle longer than ttl.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
	}
}

// get returns the session for a client, creating it on first use.
// Caller must hold the write lock.
func (m *Manager) get(clientID string) *domain.Session {
	if s, ok := m.sessions[clientID]; ok {
		return s
	}
	s := domain.NewSession()
	m.sessions[clientID] = s
	slog.Info("Chat session created", "client_id", clientID, "session_id", s.ID)
	return s
}

// History returns a copy of the client's transcript.
func (m *Manager) History(clientID string) []domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(clientID).History()
}

// AppendExchange appends one user/assistant pair atomically and returns the
// new transcript length. Appending both turns under one lock keeps the
// transcript strictly alternating.
func (m *Manager) AppendExchange(clientID, userText, assistantText string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.get(clientID)
	s.Append(domain.RoleUser, userText)
	s.Append(domain.RoleAssistant, assistantText)
	return s.Len()
}

// Reset discards the client's session so the next message starts a fresh
// conversation.
func (m *Manager) Reset(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[clientID]; ok {
		delete(m.sessions, clientID)
		slog.Info("Chat session reset", "client_id", clientID, "session_id", s.ID)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartSweeper runs a background goroutine that periodically evicts idle
// sessions until ctx is cancelled.
func (m *Manager) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session sweeper started", "interval", sweepInterval, "ttl", m.ttl)

		for {
			select {
			case <-ticker.C:
				if evicted := m.sweep(time.Now()); evicted > 0 {
					slog.Info("Session sweeper evicted idle sessions", "count", evicted)
				}
			case <-ctx.Done():
				slog.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

// sweep removes sessions idle since now-ttl and returns how many it evicted.
func (m *Manager) sweep(now time.Time) int {
	cutoff := now.Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for clientID, s := range m.sessions {
		if s.IdleSince(cutoff) {
			delete(m.sessions, clientID)
			evicted++
		}
	}
	return evicted
}
