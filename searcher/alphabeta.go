package searcher

import (
	"fmt"
	"math"
	"sort"
	"time"

	"cannon/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	// WinScore is returned for a position the side to move has won.
	WinScore = 1e9

	DefaultDepth           = 2
	DefaultTimeLimit       = time.Second
	DefaultQuiescenceDepth = 6
)

// AlphaBeta plays a side with an iterative deepening negamax search.
type AlphaBeta struct {
	game   *game.Game
	player *game.Player

	weights         game.Weights
	depth           int
	maxDepth        int
	timeLimit       time.Duration
	failHard        bool
	refreshTT       bool
	quiescenceDepth int

	rng     *rand.Rand
	tt      *transpositionTable
	metrics MetricsCollector
	last    SearchMetrics

	start    time.Time
	timedOut bool
}

func NewAlphaBeta(g *game.Game, side game.Side, options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		game:            g,
		player:          g.Player(side),
		weights:         game.DefaultWeights,
		depth:           DefaultDepth,
		timeLimit:       DefaultTimeLimit,
		refreshTT:       true,
		quiescenceDepth: DefaultQuiescenceDepth,
		tt:              newTranspositionTable(),
		metrics:         NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	if ab.rng == nil {
		ab.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if ab.maxDepth != 0 && ab.maxDepth < ab.depth {
		panic("max depth must not be below the first search depth")
	}
	return ab
}

// SetTownPosition picks a town square uniformly at random.
func (ab *AlphaBeta) SetTownPosition(candidates []game.Position) game.Position {
	return candidates[ab.rng.Intn(len(candidates))]
}

// PlayTurn searches and plays the best move. Without any legal move the
// opponent is declared the winner and false is returned.
func (ab *AlphaBeta) PlayTurn(state game.State) bool {
	move, ok := ab.FindMove()
	if !ok {
		ab.game.EndGame(ab.player.Side().Opponent())
		return false
	}
	ab.game.Execute(ab.player, move, false)
	return true
}

// Metrics returns the metrics of the last search, when collected.
func (ab *AlphaBeta) Metrics() SearchMetrics {
	return ab.last
}

// FindMove runs iterative deepening until the time budget is spent or a
// finishing move is found. The result of an interrupted pass is only used
// when no pass completed.
func (ab *AlphaBeta) FindMove() (game.Move, bool) {
	ab.start = time.Now()
	ab.metrics.Start()
	if ab.refreshTT {
		defer ab.tt.clear()
	}

	var best game.ScoredMove
	found := false
	for depth := ab.depth; ab.maxDepth == 0 || depth <= ab.maxDepth; depth += 2 {
		ab.timedOut = false
		result, ok := ab.searchRoot(depth)
		if !ok {
			break
		}
		if ab.timedOut {
			ab.metrics.Interrupt()
			if !found {
				best, found = result, true
			}
			break
		}
		best, found = result, true
		ab.metrics.CompletePass(depth)
		log.Debug().
			Stringer("side", ab.player.Side()).
			Int("depth", depth).
			Float64("score", result.Score).
			Stringer("move", result.Move).
			Dur("elapsed", time.Since(ab.start)).
			Msg("search pass completed")

		// depth steps by two so consecutive passes end on the same side
		if best.IsFinish() || ab.timeUp() || (ab.timeLimit == 0 && ab.maxDepth == 0) {
			break
		}
	}

	ab.last = ab.metrics.Complete()
	if found {
		log.Info().
			Stringer("side", ab.player.Side()).
			Stringer("move", best.Move).
			Float64("score", best.Score).
			Dur("elapsed", time.Since(ab.start)).
			Msg("move chosen")
	}
	return best.Move, found
}

func (ab *AlphaBeta) timeUp() bool {
	return ab.timeLimit > 0 && time.Since(ab.start) >= ab.timeLimit
}

// searchRoot always expands the root so that even a pass that runs out of
// time yields a move.
func (ab *AlphaBeta) searchRoot(depth int) (game.ScoredMove, bool) {
	p := ab.player
	moves := ab.orderedMoves(p)
	if len(moves) == 0 {
		return game.ScoredMove{}, false
	}
	if moves[0].IsFinish() {
		return game.ScoredMove{Move: moves[0].Move, Score: WinScore}, true
	}
	ab.metrics.AddNode()

	key := ab.game.Hash(p.Side())
	if m, ok := ab.tt.lookup(key); ok {
		ab.metrics.AddTTHit()
		moves = promote(moves, m)
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	best := game.ScoredMove{Move: moves[0].Move, Score: math.Inf(-1)}
	for _, sm := range moves {
		score := -ab.child(p, sm.Move, depth-1, -beta, -alpha)
		if score > best.Score {
			best = game.ScoredMove{Move: sm.Move, Score: score}
		}
		if score > alpha {
			alpha = score
		}
	}
	ab.storeTT(p, key, best.Move)
	return best, true
}

// negamax returns the value of the position for p, the side to move.
func (ab *AlphaBeta) negamax(p *game.Player, depth int, alpha, beta float64) float64 {
	if depth <= 0 {
		return ab.quiesce(p, alpha, beta, 0)
	}
	if ab.timeUp() {
		ab.timedOut = true
		return ab.quiesce(p, alpha, beta, 0)
	}
	ab.metrics.AddNode()

	// a known best move is trusted and searched alone
	key := ab.game.Hash(p.Side())
	if m, ok := ab.tt.lookup(key); ok {
		if !ab.playable(p, m) {
			panic(fmt.Sprintf("transposition table collision on %#x: %s is not playable for %s", key, m, p.Side()))
		}
		ab.metrics.AddTTHit()
		return -ab.child(p, m, depth-1, -beta, -alpha)
	}

	moves := ab.orderedMoves(p)
	if len(moves) == 0 {
		return -WinScore
	}
	if moves[0].IsFinish() {
		return WinScore
	}

	alphaOrig := alpha
	best := math.Inf(-1)
	bestMove := moves[0].Move
	for _, sm := range moves {
		score := -ab.child(p, sm.Move, depth-1, -beta, -alpha)
		if score > best {
			best = score
			bestMove = sm.Move
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			ab.metrics.AddCutoff()
			break
		}
	}
	ab.storeTT(p, key, bestMove)
	return ab.bound(best, alphaOrig, beta)
}

// child plays m for p, searches the reply and takes m back. The position
// hash must be the same afterwards, otherwise every sibling searched next
// would start from a corrupted board.
func (ab *AlphaBeta) child(p *game.Player, m game.Move, depth int, alpha, beta float64) float64 {
	side := p.Side()
	hash := ab.game.Hash(side)

	ab.game.Execute(p, m, true)
	score := ab.negamax(ab.game.Enemy(p), depth, alpha, beta)
	ab.game.Undo(p, m)

	if ab.game.Hash(side) != hash {
		panic(fmt.Sprintf("undo of %s for %s left the position altered", m, side))
	}
	return score
}

// bound applies the fail-hard clamp when configured.
func (ab *AlphaBeta) bound(score, alpha, beta float64) float64 {
	if !ab.failHard {
		return score
	}
	if score >= beta {
		return beta
	}
	if score <= alpha {
		return alpha
	}
	return score
}

// orderedMoves evaluates p's moves and sorts them best first.
func (ab *AlphaBeta) orderedMoves(p *game.Player) []game.ScoredMove {
	moves := ab.game.Moves(p)
	scored := make([]game.ScoredMove, len(moves))
	for i, m := range moves {
		scored[i] = ab.game.Eval(p, m, ab.weights)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func (ab *AlphaBeta) playable(p *game.Player, m game.Move) bool {
	for _, legal := range ab.game.PossibleMoves(p.Side(), m.From) {
		if legal == m {
			return true
		}
	}
	return false
}

func (ab *AlphaBeta) storeTT(p *game.Player, key uint64, m game.Move) {
	ab.tt.store(key, m, func(old game.Move) bool { return ab.playable(p, old) })
	ab.metrics.AddTTStore()
}

// promote moves m to the front of moves, keeping the rest in order.
func promote(moves []game.ScoredMove, m game.Move) []game.ScoredMove {
	for i, sm := range moves {
		if sm.Move == m {
			copy(moves[1:i+1], moves[:i])
			moves[0] = sm
			return moves
		}
	}
	panic(fmt.Sprintf("transposition table collision: %s is not a legal root move", m))
}
