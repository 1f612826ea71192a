package chat

import (
	"context"
	"errors"
	"testing"

	"carbonbuddy/internal/domain"
)

// fakeProvider scripts remote-model behavior for resolver tests.
type fakeProvider struct {
	reply       string
	err         error
	calls       int
	lastHistory []domain.Message
	lastQuery   string
}

func (f *fakeProvider) Send(_ context.Context, history []domain.Message, query string) (string, error) {
	f.calls++
	f.lastHistory = history
	f.lastQuery = query
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) Model() string { return "fake-model" }

func TestResolveOfflineMatchesFallback(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	if r.Mode() != domain.ModeOffline {
		t.Fatalf("expected offline mode, got %v", r.Mode())
	}

	queries := []string{"tell me a joke", "a bedtime story", "a puzzle", "how do plants grow?"}
	for _, q := range queries {
		got := r.Resolve(context.Background(), nil, q)
		if got.Text != Match(q) {
			t.Errorf("Resolve(%q).Text = %q, want Match result %q", q, got.Text, Match(q))
		}
		if got.Mode != domain.ModeOffline {
			t.Errorf("Resolve(%q).Mode = %v, want offline", q, got.Mode)
		}
		if got.Notice != "" {
			t.Errorf("offline resolve should carry no notice, got %q", got.Notice)
		}
	}
}

func TestResolveOnlineSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeProvider{reply: "Photosynthesis converts light into energy."}
	r := NewResolver(fake)
	if r.Mode() != domain.ModeOnline {
		t.Fatalf("expected online mode, got %v", r.Mode())
	}

	history := []domain.Message{
		{Role: domain.RoleUser, Text: "hi"},
		{Role: domain.RoleAssistant, Text: "hello!"},
	}
	got := r.Resolve(context.Background(), history, "how do plants grow?")

	if got.Text != fake.reply {
		t.Errorf("Resolve returned %q, want provider reply %q", got.Text, fake.reply)
	}
	if got.Mode != domain.ModeOnline {
		t.Errorf("Resolve.Mode = %v, want online", got.Mode)
	}
	if fake.lastQuery != "how do plants grow?" {
		t.Errorf("provider received query %q", fake.lastQuery)
	}
	if len(fake.lastHistory) != 2 {
		t.Errorf("provider received %d history messages, want 2", len(fake.lastHistory))
	}
}

func TestResolveRemoteFailureDegradesSingleCall(t *testing.T) {
	t.Parallel()

	fake := &fakeProvider{err: errors.New("upstream timeout")}
	r := NewResolver(fake)

	got := r.Resolve(context.Background(), nil, "tell me a joke")
	if got.Text != JokeReply {
		t.Errorf("degraded resolve returned %q, want joke reply", got.Text)
	}
	if got.Mode != domain.ModeOffline {
		t.Errorf("degraded reply mode = %v, want offline", got.Mode)
	}
	if got.Notice == "" {
		t.Error("degraded reply should carry a user-visible notice")
	}

	// Persistent mode is untouched; the next call attempts the remote path.
	if r.Mode() != domain.ModeOnline {
		t.Fatalf("persistent mode flipped to %v after a per-call failure", r.Mode())
	}

	fake.err = nil
	fake.reply = "recovered"
	second := r.Resolve(context.Background(), nil, "still there?")
	if second.Text != "recovered" || second.Mode != domain.ModeOnline {
		t.Errorf("second resolve = %+v, want online recovery", second)
	}
	if fake.calls != 2 {
		t.Errorf("provider called %d times, want 2 (remote retried after failure)", fake.calls)
	}
}

func TestResolveNeverErrorsOutward(t *testing.T) {
	t.Parallel()

	fake := &fakeProvider{err: errors.New("boom")}
	r := NewResolver(fake)

	// Every failure path still yields a non-empty reply string.
	got := r.Resolve(context.Background(), nil, "")
	if got.Text == "" {
		t.Error("Resolve returned an empty reply on failure")
	}
}
