package searcher

import (
	"time"

	"cannon/game"

	"golang.org/x/exp/rand"
)

type Option func(ab *AlphaBeta)

// WithDepth sets the depth of the first iterative deepening pass.
func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

// WithMaxDepth caps iterative deepening. Zero means no cap.
func WithMaxDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth >= 0 {
			ab.maxDepth = depth
		}
	}
}

// WithTimeLimit sets the wall clock budget of a turn. Zero disables iterative
// deepening beyond the first pass unless a max depth is set.
func WithTimeLimit(limit time.Duration) Option {
	return func(ab *AlphaBeta) {
		if limit >= 0 {
			ab.timeLimit = limit
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return func(ab *AlphaBeta) {
		ab.weights = weights
	}
}

// WithFailHard clamps returned scores to the alpha-beta window.
func WithFailHard() Option {
	return func(ab *AlphaBeta) {
		ab.failHard = true
	}
}

// WithRefreshTT controls whether the transposition table is dropped after
// each committed move.
func WithRefreshTT(refresh bool) Option {
	return func(ab *AlphaBeta) {
		ab.refreshTT = refresh
	}
}

// WithQuiescenceDepth bounds how many plies of captures are followed past
// the horizon.
func WithQuiescenceDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth >= 0 {
			ab.quiescenceDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = NewMetricsCollector()
	}
}

// WithSeed seeds the town placement choice.
func WithSeed(seed uint64) Option {
	return func(ab *AlphaBeta) {
		ab.rng = rand.New(rand.NewSource(seed))
	}
}
