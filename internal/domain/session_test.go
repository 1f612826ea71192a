package domain

import (
	"testing"
	"time"
)

func TestNewSessionIsEmpty(t *testing.T) {
	t.Parallel()

	s := NewSession()
	if s.ID == "" {
		t.Error("expected a non-empty session ID")
	}
	if s.Len() != 0 {
		t.Errorf("new session has %d messages, want 0", s.Len())
	}
}

func TestAppendUpdatesLastSeen(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.LastSeenAt = time.Now().Add(-time.Hour)

	s.Append(RoleUser, "hello")
	if s.IdleSince(time.Now().Add(-time.Minute)) {
		t.Error("append did not refresh LastSeenAt")
	}
	if s.Len() != 1 {
		t.Errorf("session has %d messages, want 1", s.Len())
	}
}

func TestHistoryIsACopy(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Append(RoleUser, "original")

	h := s.History()
	h[0].Text = "changed"

	if s.Messages[0].Text != "original" {
		t.Errorf("transcript mutated through History copy: %q", s.Messages[0].Text)
	}
}
