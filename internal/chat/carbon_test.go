package chat

import "testing"

func TestCarbonScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		historyLen int
		want       int
	}{
		{"empty history is baseline", 0, 12},
		{"two messages", 2, 14},
		{"just below clamp", 87, 99},
		{"exactly clamped", 88, 100},
		{"far past clamp", 200, 100},
		{"negative input clamps at baseline range", -20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CarbonScore(tt.historyLen); got != tt.want {
				t.Errorf("CarbonScore(%d) = %d, want %d", tt.historyLen, got, tt.want)
			}
		})
	}
}

func TestCarbonScoreBounds(t *testing.T) {
	t.Parallel()

	for n := -100; n <= 300; n++ {
		got := CarbonScore(n)
		if got < 0 || got > 100 {
			t.Fatalf("CarbonScore(%d) = %d, out of [0,100]", n, got)
		}
	}
}
