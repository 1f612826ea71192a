package chat

// Carbon score formula: a fixed baseline plus one point per message,
// clamped to [0,100]. The number is purely cosmetic and is recomputed
// from the transcript length on every render.
const (
	carbonBase     = 12
	carbonPerMsg   = 1
	carbonScoreMax = 100
)

// CarbonScore estimates a footprint score from the transcript length.
func CarbonScore(historyLen int) int {
	score := carbonBase + historyLen*carbonPerMsg
	if score < 0 {
		return 0
	}
	if score > carbonScoreMax {
		return carbonScoreMax
	}
	return score
}
