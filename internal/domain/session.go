package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the conversation transcript for one widget instance.
// It lives in memory for the lifetime of the interactive session and is
// never persisted. Synchronization is owned by the session manager; the
// type itself is a plain value holder.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastSeenAt time.Time
	Messages   []Message
}

// NewSession creates an empty session.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// Append adds a message to the transcript.
func (s *Session) Append(role Role, text string) {
	s.Messages = append(s.Messages, Message{Role: role, Text: text})
	s.LastSeenAt = time.Now()
}

// History returns a copy of the transcript so callers can read it without
// holding the manager's lock.
func (s *Session) History() []Message {
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	return len(s.Messages)
}

// IdleSince reports whether the session has seen no activity since the cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.LastSeenAt.Before(cutoff)
}
