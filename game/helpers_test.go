package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestGame builds a game from explicit soldier lists.
func newTestGame(t *testing.T, light, dark []Position) *Game {
	t.Helper()
	lp := NewEmptyPlayer(Light)
	dp := NewEmptyPlayer(Dark)
	for _, pos := range light {
		require.NoError(t, lp.AddSoldier(pos), "light soldier at %s", pos)
	}
	for _, pos := range dark {
		require.NoError(t, dp.AddSoldier(pos), "dark soldier at %s", pos)
	}
	return NewGame(WithSeed(1), WithPlayers(lp, dp))
}

func containsMove(moves []Move, m Move) bool {
	for _, got := range moves {
		if got == m {
			return true
		}
	}
	return false
}

func movesFrom(moves []Move, from Position) []Move {
	var out []Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}
