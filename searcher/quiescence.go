package searcher

import (
	"math"

	"cannon/game"
)

// quiesce resolves captures and shots past the horizon. Noisy moves of the
// side to move are searched further; the first quiet move in the ordered
// list ends the node with its own evaluation.
func (ab *AlphaBeta) quiesce(p *game.Player, alpha, beta float64, ply int) float64 {
	ab.metrics.AddQuiescenceNode()

	moves := ab.orderedMoves(p)
	if len(moves) == 0 {
		return -WinScore
	}
	if moves[0].IsFinish() {
		return WinScore
	}
	if ply >= ab.quiescenceDepth {
		return moves[0].Score
	}

	alphaOrig := alpha
	best := math.Inf(-1)
	for _, sm := range moves {
		if !sm.IsNoisy() {
			best = math.Max(best, sm.Score)
			break
		}

		ab.game.Execute(p, sm.Move, true)
		score := -ab.quiesce(ab.game.Enemy(p), -beta, -alpha, ply+1)
		ab.game.Undo(p, sm.Move)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			ab.metrics.AddCutoff()
			break
		}
	}
	return ab.bound(best, alphaOrig, beta)
}
