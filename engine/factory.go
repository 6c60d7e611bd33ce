package engine

import (
	"cannon/game"
	"cannon/player"
	"cannon/searcher"
)

// AlphaBeta returns a factory for search controllers built with options.
func AlphaBeta(options ...searcher.Option) Factory {
	return func(g *game.Game, side game.Side) game.Controller {
		return searcher.NewAlphaBeta(g, side, options...)
	}
}

// AlphaBetaFromMap returns a factory for search controllers configured from
// a settings map. The map is validated once, up front.
func AlphaBetaFromMap(settings map[string]any, options ...searcher.Option) (Factory, error) {
	if _, err := searcher.FromMap(game.NewGame(game.WithSeed(1)), game.Light, settings, options...); err != nil {
		return nil, err
	}
	return func(g *game.Game, side game.Side) game.Controller {
		ab, err := searcher.FromMap(g, side, settings, options...)
		if err != nil {
			panic(err)
		}
		return ab
	}, nil
}

// Random returns a factory for greedy random controllers. A zero seed seeds
// each controller from the clock.
func Random(seed uint64) Factory {
	return func(g *game.Game, side game.Side) game.Controller {
		if seed == 0 {
			return player.NewRandom(g, side, 0)
		}
		return player.NewRandom(g, side, seed+uint64(side))
	}
}
