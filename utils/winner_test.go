package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWinner(t *testing.T) {
	challenger := "11111111-1111-1111-1111-111111111111"
	opponent := "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		name             string
		challengerScore  int
		opponentScore    int
		challengerTimeMs int64
		opponentTimeMs   int64
		want             *string
	}{
		{"higher score wins", 5, 3, 9000, 1000, &challenger},
		{"higher score wins for opponent", 4, 5, 1000, 9000, &opponent},
		{"equal score, faster challenger wins", 5, 5, 1000, 1200, &challenger},
		{"equal score, faster opponent wins", 5, 5, 1200, 1000, &opponent},
		{"equal score and time is a draw", 5, 5, 1200, 1200, nil},
		{"zero scores resolved on time", 0, 0, 500, 700, &challenger},
		{"all zero is a draw", 0, 0, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWinner(challenger, opponent, tt.challengerScore, tt.opponentScore, tt.challengerTimeMs, tt.opponentTimeMs)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestResolveWinnerIsDeterministic(t *testing.T) {
	challenger := "11111111-1111-1111-1111-111111111111"
	opponent := "22222222-2222-2222-2222-222222222222"

	first := ResolveWinner(challenger, opponent, 3, 3, 5000, 4000)
	for i := 0; i < 100; i++ {
		again := ResolveWinner(challenger, opponent, 3, 3, 5000, 4000)
		assert.Equal(t, *first, *again)
	}
}
