package engine

import (
	"testing"

	"cannon/game"
	"cannon/searcher"

	"github.com/stretchr/testify/require"
)

// passer never moves.
type passer struct{}

func (passer) SetTownPosition(candidates []game.Position) game.Position { return candidates[0] }
func (passer) PlayTurn(game.State) bool                                 { return false }

// squatter insists on a corner town.
type squatter struct{ passer }

func (squatter) SetTownPosition([]game.Position) game.Position { return game.Pos(0, 9) }

func TestLocalEngine(t *testing.T) {
	t.Run("random players finish or hit the turn limit", func(t *testing.T) {
		eng := LocalEngine(Random(3), Random(4), WithGame(game.NewGame(game.WithSeed(1))))

		metric, moves, err := eng.Run()

		require.NoError(t, err)
		require.Equal(t, eng.ID, metric.ID)
		require.LessOrEqual(t, metric.TotalMoves, MaxTurns)
		require.Empty(t, moves, "Random players report no search metrics")
		require.NotNil(t, eng.Game.Player(game.Light).Town())
		require.NotNil(t, eng.Game.Player(game.Dark).Town())
		if winner, ok := eng.Game.Winner(); ok {
			require.Equal(t, winner.String(), metric.Winner)
		} else {
			require.Empty(t, metric.Winner)
			require.Equal(t, MaxTurns, metric.TotalMoves)
		}
	})

	t.Run("search players report metrics per move", func(t *testing.T) {
		eng := LocalEngine(
			AlphaBeta(searcher.WithTimeLimit(0), searcher.WithMetrics(), searcher.WithSeed(1)),
			Random(5),
			WithGame(game.NewGame(game.WithSeed(1))),
			WithMaxTurns(6))

		metric, moves, err := eng.Run()

		require.NoError(t, err)
		require.NotEmpty(t, moves)
		for _, m := range moves {
			require.Equal(t, game.Light, m.Side)
			require.Equal(t, 1, m.Step%2, "Light plays the odd turns")
			require.Equal(t, searcher.DefaultDepth, m.Depth)
		}
		require.LessOrEqual(t, metric.TotalMoves, 6)
	})

	t.Run("a side without moves loses", func(t *testing.T) {
		lp := game.NewEmptyPlayer(game.Light)
		require.NoError(t, lp.AddSoldier(game.Pos(5, 0)))
		dp := game.NewEmptyPlayer(game.Dark)
		require.NoError(t, dp.AddSoldier(game.Pos(9, 9)))
		g := game.NewGame(game.WithSeed(1), game.WithPlayers(lp, dp))
		require.NoError(t, g.PlaceTown(game.Dark, game.Pos(1, 0)), "Keep the town out of reach of the light soldier")

		metric, _, err := LocalEngine(Random(1), Random(2), WithGame(g)).Run()

		require.NoError(t, err)
		require.Equal(t, game.Dark.String(), metric.Winner)
		require.Zero(t, metric.TotalMoves)
	})

	t.Run("stalled controller", func(t *testing.T) {
		pass := func(*game.Game, game.Side) game.Controller { return passer{} }

		_, _, err := LocalEngine(pass, Random(2), WithGame(game.NewGame(game.WithSeed(1)))).Run()

		require.ErrorIs(t, err, ErrStalled)
	})

	t.Run("illegal town square", func(t *testing.T) {
		squat := func(*game.Game, game.Side) game.Controller { return squatter{} }

		_, _, err := LocalEngine(squat, Random(2)).Run()

		require.ErrorIs(t, err, game.ErrInvalidTown)
	})

	t.Run("configured search", func(t *testing.T) {
		_, err := AlphaBetaFromMap(map[string]any{"depth": 0})
		require.ErrorIs(t, err, searcher.ErrInvalidConfig)

		factory, err := AlphaBetaFromMap(map[string]any{"depth": 2, "time_limit": 0.0})
		require.NoError(t, err)
		ctrl := factory(game.NewGame(game.WithSeed(1)), game.Dark)
		require.IsType(t, &searcher.AlphaBeta{}, ctrl)
	})
}
