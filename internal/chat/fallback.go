// Package chat implements response resolution for the conversation widget:
// online resolution against a hosted model, offline canned replies, and the
// cosmetic carbon score shown next to the transcript.
package chat

import "strings"

// Canned replies served when no live model is reachable.
const (
	JokeReply    = "Why did the tomato blush? Because it saw the salad dressing! 😄"
	StoryReply   = "Once upon a time a little star learned to shine. The end. ✨"
	RiddleReply  = "What has keys but can't open locks? A keyboard!"
	GenericReply = "I can't reach the helper brain right now, but I'd love to help — try rephrasing your question or check your API key."
)

// Keyword groups checked in priority order; the first matching group wins.
var (
	jokeKeywords   = []string{"joke", "funny", "make me laugh"}
	storyKeywords  = []string{"story", "bedtime", "tell me a story"}
	riddleKeywords = []string{"riddle", "puzzle"}
)

// Match returns the canned reply for a query. Matching is case-insensitive
// substring search; queries hitting none of the keyword groups get the
// generic guidance reply. Pure and deterministic.
func Match(query string) string {
	q := strings.ToLower(query)
	switch {
	case containsAny(q, jokeKeywords):
		return JokeReply
	case containsAny(q, storyKeywords):
		return StoryReply
	case containsAny(q, riddleKeywords):
		return RiddleReply
	default:
		return GenericReply
	}
}

func containsAny(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}
