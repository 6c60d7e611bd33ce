package player

import (
	"time"

	"cannon/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Random plays a side greedily when it can and randomly otherwise. Soldiers
// are visited in board order: the first one that can retreat does so, the
// first one that can kill or finish does so. Failing both, one random move
// per soldier is drawn and one of those is played.
type Random struct {
	game *game.Game
	side game.Side
	rng  *rand.Rand
}

// NewRandom creates a random player. A zero seed seeds from the clock.
func NewRandom(g *game.Game, side game.Side, seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		game: g,
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) SetTownPosition(candidates []game.Position) game.Position {
	return candidates[r.rng.Intn(len(candidates))]
}

// PlayTurn plays one move. Without any legal move the opponent is declared
// the winner and false is returned.
func (r *Random) PlayTurn(state game.State) bool {
	var candidates []game.Move
	for _, pos := range state.Army(r.side).Soldiers {
		moves := r.game.PossibleMoves(r.side, pos)
		if len(moves) == 0 {
			continue
		}

		// defense first
		for _, m := range moves {
			if m.IsRetreat() {
				return r.play(m)
			}
		}
		// attack second
		for _, m := range moves {
			if m.IsKill() || m.IsFinish() {
				return r.play(m)
			}
		}
		candidates = append(candidates, moves[r.rng.Intn(len(moves))])
	}

	if len(candidates) == 0 {
		log.Debug().Stringer("side", r.side).Msg("no legal move")
		r.game.EndGame(r.side.Opponent())
		return false
	}
	return r.play(candidates[r.rng.Intn(len(candidates))])
}

func (r *Random) play(m game.Move) bool {
	r.game.Execute(r.game.Player(r.side), m, false)
	return true
}
