package engine

import (
	"fmt"
	"time"

	"cannon/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Local runs a match between two in-process controllers.
type Local struct {
	ID       uuid.UUID
	Game     *game.Game
	maxTurns int
}

type Option func(*Local)

func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

// WithGame plays on a prepared game instead of a fresh one.
func WithGame(g *game.Game) Option {
	return func(l *Local) {
		l.Game = g
	}
}

// LocalEngine sets up a match. The factories are called once the game exists
// so that controllers can hold on to it.
func LocalEngine(light, dark Factory, options ...Option) *Local {
	l := &Local{
		ID:       uuid.New(),
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(l)
	}
	if l.Game == nil {
		l.Game = game.NewGame()
	}
	l.Game.Player(game.Light).SetController(light(l.Game, game.Light))
	l.Game.Player(game.Dark).SetController(dark(l.Game, game.Dark))
	return l
}

// Run places both towns, light first, then alternates turns starting with
// light until the game is over or the turn limit is reached.
func (l *Local) Run() (GameMetric, []MoveMetric, error) {
	logger := log.With().Stringer("match", l.ID).Logger()
	metric := GameMetric{ID: l.ID, StartTime: time.Now()}
	var moveMetrics []MoveMetric

	for _, side := range []game.Side{game.Light, game.Dark} {
		if l.Game.Player(side).Town() != nil {
			continue
		}
		pos := l.Game.Player(side).ChooseTown(l.Game.TownPositions(side))
		if err := l.Game.PlaceTown(side, pos); err != nil {
			return metric, nil, fmt.Errorf("match %s: %w", l.ID, err)
		}
		logger.Debug().Stringer("side", side).Stringer("town", pos).Msg("town placed")
	}
	logger.Info().Msg("match started")

	side := game.Light
	for turn := 1; !l.Game.Finished() && turn <= l.maxTurns; turn++ {
		p := l.Game.Player(side)
		if !p.PlayTurn(l.Game.State()) {
			if l.Game.Finished() {
				break
			}
			return metric, moveMetrics, fmt.Errorf("match %s: %s on turn %d: %w", l.ID, side, turn, ErrStalled)
		}
		metric.TotalMoves++
		if m, ok := p.Controller().(metered); ok {
			moveMetrics = append(moveMetrics, MoveMetric{
				Step:          turn,
				Side:          side,
				SearchMetrics: m.Metrics(),
			})
		}
		side = side.Opponent()
	}

	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	if winner, ok := l.Game.Winner(); ok {
		metric.Winner = winner.String()
		logger.Info().Stringer("winner", winner).Int("moves", metric.TotalMoves).Dur("duration", metric.Duration).Msg("match finished")
	} else {
		logger.Info().Int("moves", metric.TotalMoves).Msgf("stopped after %d turns (no winner yet)", l.maxTurns)
	}
	return metric, moveMetrics, nil
}
