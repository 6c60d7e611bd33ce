package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMovesInitialPosition(t *testing.T) {
	t.Run("front soldier steps forward", func(t *testing.T) {
		g := NewGame(WithSeed(1))
		moves := g.Moves(g.Player(Light))

		require.Contains(t, moves, Move{From: Pos(5, 6), To: Pos(5, 5), Kind: Advance},
			"Light front soldier should be able to advance")
		require.Contains(t, moves, Move{From: Pos(5, 7), To: Pos(4, 6), Kind: Advance},
			"Second rank soldier should step diagonally into the free file")
		require.NotContains(t, moves, Move{From: Pos(5, 8), To: Pos(5, 7), Kind: Advance},
			"A soldier cannot step onto a friendly soldier")
	})

	t.Run("dark moves towards higher ranks", func(t *testing.T) {
		g := NewGame(WithSeed(1))
		moves := g.Moves(g.Player(Dark))

		require.Contains(t, moves, Move{From: Pos(4, 3), To: Pos(4, 4), Kind: Advance})
		for _, m := range moves {
			if m.Kind == Advance {
				require.Equal(t, m.From.Y+1, m.To.Y, "Dark advances should increase y: %s", m)
			}
		}
	})

	t.Run("files of three form cannons that can slide", func(t *testing.T) {
		g := NewGame(WithSeed(1))
		moves := g.Moves(g.Player(Light))

		require.Contains(t, moves, Move{From: Pos(3, 6), To: Pos(3, 9), Kind: Slide})
		require.Contains(t, moves, Move{From: Pos(3, 8), To: Pos(3, 5), Kind: Slide})
	})
}

func TestGenerateMovesQuietStep(t *testing.T) {
	g := newTestGame(t, []Position{Pos(5, 8)}, []Position{Pos(4, 1)})

	light := g.Moves(g.Player(Light))
	require.Equal(t, []Move{
		{From: Pos(5, 8), To: Pos(4, 7), Kind: Advance},
		{From: Pos(5, 8), To: Pos(5, 7), Kind: Advance},
		{From: Pos(5, 8), To: Pos(6, 7), Kind: Advance},
	}, light, "A lone soldier only has its three forward steps")

	dark := g.Moves(g.Player(Dark))
	require.Contains(t, dark, Move{From: Pos(4, 1), To: Pos(4, 2), Kind: Advance})
}

func TestGenerateMovesFinishShortCircuit(t *testing.T) {
	t.Run("army generation returns only the finishing move", func(t *testing.T) {
		g := newTestGame(t,
			[]Position{Pos(1, 5), Pos(4, 1), Pos(8, 8)},
			[]Position{Pos(2, 4), Pos(7, 7)})
		require.NoError(t, g.PlaceTown(Dark, Pos(4, 0)))

		moves := g.Moves(g.Player(Light))

		require.Equal(t, []Move{{From: Pos(4, 1), To: Pos(4, 0), Kind: Finish}}, moves,
			"Other captures must not be generated once the town can be taken")
	})

	t.Run("lateral step onto the town finishes", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(3, 0)}, []Position{Pos(9, 9)})
		require.NoError(t, g.PlaceTown(Dark, Pos(4, 0)))

		moves := g.Moves(g.Player(Light))

		require.Equal(t, []Move{{From: Pos(3, 0), To: Pos(4, 0), Kind: Finish}}, moves)
	})

	t.Run("cannon shot at the town finishes", func(t *testing.T) {
		g := newTestGame(t,
			[]Position{Pos(3, 3), Pos(3, 4), Pos(3, 5), Pos(8, 5)},
			[]Position{Pos(7, 4)})
		require.NoError(t, g.PlaceTown(Dark, Pos(3, 0)))

		moves := g.Moves(g.Player(Light))

		require.Equal(t, []Move{{From: Pos(3, 3), To: Pos(3, 0), Kind: FireFinish}}, moves)
	})

	t.Run("single soldier query keeps going when asked to", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(4, 1)}, []Position{Pos(5, 0)})
		require.NoError(t, g.PlaceTown(Dark, Pos(4, 0)))

		moves := g.PossibleMoves(Light, Pos(4, 1))

		require.Equal(t, Move{From: Pos(4, 1), To: Pos(4, 0), Kind: Finish}, moves[0],
			"The finishing move should be listed first")
		require.Contains(t, moves, Move{From: Pos(4, 1), To: Pos(5, 0), Kind: Capture})
		require.Contains(t, moves, Move{From: Pos(4, 1), To: Pos(3, 0), Kind: Advance})
	})
}

func TestGenerateMovesCaptures(t *testing.T) {
	t.Run("sideways only onto an enemy", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(5, 5)}, []Position{Pos(6, 5)})

		moves := g.Moves(g.Player(Light))

		require.Contains(t, moves, Move{From: Pos(5, 5), To: Pos(6, 5), Kind: Capture})
		for _, m := range moves {
			require.NotEqual(t, Pos(4, 5), m.To, "An empty lateral square is not a destination")
		}
	})

	t.Run("captures come before quiet moves", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(2, 8), Pos(5, 5)}, []Position{Pos(4, 4)})

		moves := g.Moves(g.Player(Light))

		require.Equal(t, Move{From: Pos(5, 5), To: Pos(4, 4), Kind: Capture}, moves[0])
		seenQuiet := false
		for _, m := range moves {
			if !m.IsKill() {
				seenQuiet = true
				continue
			}
			require.False(t, seenQuiet, "Capture %s listed after a quiet move", m)
		}
	})
}

func TestGenerateMovesCannon(t *testing.T) {
	cannon := []Position{Pos(3, 6), Pos(3, 7), Pos(3, 8)}

	t.Run("front soldier fires and the cannon slides", func(t *testing.T) {
		g := newTestGame(t, cannon, []Position{Pos(3, 4)})

		moves := g.PossibleMoves(Light, Pos(3, 6))

		require.Contains(t, moves, Move{From: Pos(3, 6), To: Pos(3, 4), Kind: Fire})
		require.Contains(t, moves, Move{From: Pos(3, 6), To: Pos(3, 9), Kind: Slide})
	})

	t.Run("friendly soldier on the first shot square blocks fire", func(t *testing.T) {
		g := newTestGame(t, append([]Position{Pos(3, 4)}, cannon...), []Position{Pos(3, 3)})

		for _, m := range g.PossibleMoves(Light, Pos(3, 6)) {
			require.False(t, m.IsShoot(), "Unexpected shot %s", m)
		}
	})

	t.Run("cannon does not fire past the first enemy", func(t *testing.T) {
		g := newTestGame(t, cannon, []Position{Pos(3, 4), Pos(3, 3)})

		var shots []Move
		for _, m := range g.PossibleMoves(Light, Pos(3, 6)) {
			if m.IsShoot() {
				shots = append(shots, m)
			}
		}

		require.Equal(t, []Move{{From: Pos(3, 6), To: Pos(3, 4), Kind: Fire}}, shots)
	})

	t.Run("second shot square is reached over an empty first one", func(t *testing.T) {
		g := newTestGame(t, cannon, []Position{Pos(3, 3)})

		moves := g.PossibleMoves(Light, Pos(3, 6))

		require.Contains(t, moves, Move{From: Pos(3, 6), To: Pos(3, 3), Kind: Fire})
	})

	t.Run("occupied square in front stops fire but not the slide", func(t *testing.T) {
		g := newTestGame(t, cannon, []Position{Pos(3, 5), Pos(3, 4)})

		moves := g.PossibleMoves(Light, Pos(3, 6))

		require.NotContains(t, moves, Move{From: Pos(3, 6), To: Pos(3, 4), Kind: Fire})
		require.Contains(t, moves, Move{From: Pos(3, 6), To: Pos(3, 9), Kind: Slide})
	})

	t.Run("slide is blocked by a town", func(t *testing.T) {
		g := newTestGame(t, cannon, []Position{Pos(0, 0)})
		require.NoError(t, g.PlaceTown(Light, Pos(3, 9)))

		require.NotContains(t, g.PossibleMoves(Light, Pos(3, 6)), Move{From: Pos(3, 6), To: Pos(3, 9), Kind: Slide})
	})

	t.Run("diagonal cannon", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(2, 6), Pos(3, 7), Pos(4, 8)}, []Position{Pos(0, 4)})

		moves := g.PossibleMoves(Light, Pos(2, 6))

		require.Contains(t, moves, Move{From: Pos(2, 6), To: Pos(0, 4), Kind: Fire})
		require.Contains(t, moves, Move{From: Pos(2, 6), To: Pos(5, 9), Kind: Slide})
	})

	t.Run("horizontal rows are not cannons", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(4, 5), Pos(5, 5), Pos(6, 5)}, []Position{Pos(1, 5)})

		for _, m := range g.PossibleMoves(Light, Pos(4, 5)) {
			require.False(t, m.IsShoot() || m.IsSlide(), "Unexpected cannon move %s", m)
		}
	})
}

func TestGenerateMovesRetreat(t *testing.T) {
	t.Run("threatened soldier retreats two ranks", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(5, 5)}, []Position{Pos(5, 4)})

		var retreats []Move
		for _, m := range g.PossibleMoves(Light, Pos(5, 5)) {
			if m.IsRetreat() {
				retreats = append(retreats, m)
			}
		}

		require.ElementsMatch(t, []Move{
			{From: Pos(5, 5), To: Pos(3, 7), Kind: Retreat},
			{From: Pos(5, 5), To: Pos(5, 7), Kind: Retreat},
			{From: Pos(5, 5), To: Pos(7, 7), Kind: Retreat},
		}, retreats, "Retreats are generated once even with several threats")
	})

	t.Run("several threats still give one set of retreats", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(5, 5)}, []Position{Pos(4, 4), Pos(6, 5), Pos(4, 5)})

		count := 0
		for _, m := range g.PossibleMoves(Light, Pos(5, 5)) {
			if m.IsRetreat() {
				count++
			}
		}
		require.Equal(t, 3, count)
	})

	t.Run("no threat, no retreat", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(5, 5)}, []Position{Pos(5, 2)})

		for _, m := range g.PossibleMoves(Light, Pos(5, 5)) {
			require.False(t, m.IsRetreat())
		}
	})

	t.Run("occupied squares and the own town are skipped", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(5, 7), Pos(7, 9)}, []Position{Pos(5, 6)})
		require.NoError(t, g.PlaceTown(Light, Pos(5, 9)))

		var retreats []Move
		for _, m := range g.PossibleMoves(Light, Pos(5, 7)) {
			if m.IsRetreat() {
				retreats = append(retreats, m)
			}
		}

		require.Equal(t, []Move{{From: Pos(5, 7), To: Pos(3, 9), Kind: Retreat}}, retreats)
	})

	t.Run("dark retreats towards y=0", func(t *testing.T) {
		g := newTestGame(t, []Position{Pos(4, 5)}, []Position{Pos(4, 4)})

		moves := g.PossibleMoves(Dark, Pos(4, 4))

		require.Contains(t, moves, Move{From: Pos(4, 4), To: Pos(4, 2), Kind: Retreat})
	})
}

func TestGenerateMovesNoMoves(t *testing.T) {
	g := newTestGame(t, []Position{Pos(5, 0)}, []Position{Pos(9, 9)})

	require.Empty(t, g.Moves(g.Player(Light)), "A soldier on the last rank has nowhere to go")
	require.Empty(t, g.PossibleMoves(Light, Pos(4, 4)), "No soldier, no moves")
}
