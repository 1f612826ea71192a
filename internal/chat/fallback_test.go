package chat

import "testing"

func TestMatchKeywordGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"joke keyword", "tell me a joke", JokeReply},
		{"joke uppercase", "TELL ME A JOKE", JokeReply},
		{"joke mixed case", "Something FuNnY please", JokeReply},
		{"make me laugh phrase", "could you make me laugh?", JokeReply},
		{"story keyword", "read me a story", StoryReply},
		{"bedtime keyword", "it's bedtime", StoryReply},
		{"riddle keyword", "give me a riddle", RiddleReply},
		{"puzzle keyword", "I want a puzzle", RiddleReply},
		{"no keyword", "what's the capital of France?", GenericReply},
		{"empty query", "", GenericReply},
		{"keyword inside word", "this is funnybusiness", JokeReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Match(tt.query); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchPriorityOrder(t *testing.T) {
	t.Parallel()

	// First matching group wins: joke > story > riddle.
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"joke beats story", "tell me a funny story", JokeReply},
		{"joke beats riddle", "a funny riddle", JokeReply},
		{"story beats riddle", "a bedtime puzzle", StoryReply},
		{"all three groups", "a funny bedtime riddle", JokeReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Match(tt.query); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	t.Parallel()

	query := "any old question"
	first := Match(query)
	for i := 0; i < 10; i++ {
		if got := Match(query); got != first {
			t.Fatalf("Match is not deterministic: %q then %q", first, got)
		}
	}
}
