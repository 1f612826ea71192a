// Package domain holds the core value types for chat sessions.
package domain

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a conversation transcript.
// Messages are immutable once created; transcripts are append-only.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Mode selects which response path the resolver uses.
type Mode string

const (
	// ModeOnline routes user messages to the hosted model.
	ModeOnline Mode = "online"
	// ModeOffline answers every message with canned replies.
	ModeOffline Mode = "offline"
)
