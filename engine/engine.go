package engine

import (
	"errors"
	"time"

	"cannon/game"
	"cannon/searcher"

	"github.com/google/uuid"
)

const MaxTurns = 500

var ErrStalled = errors.New("controller passed without ending the game")

type Engine interface {
	// Run plays a match till there's a winner or the turn limit is reached
	Run() (gameMetric GameMetric, moveMetrics []MoveMetric, err error)
}

// Factory builds the controller of one side for a new match.
type Factory func(g *game.Game, side game.Side) game.Controller

type GameMetric struct {
	ID         uuid.UUID
	Winner     string // empty when the turn limit was reached
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type MoveMetric struct {
	Step int
	Side game.Side
	searcher.SearchMetrics
}

// metered is implemented by controllers that report search metrics.
type metered interface {
	Metrics() searcher.SearchMetrics
}
