package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidTown = errors.New("illegal town position")
	ErrTownPlaced  = errors.New("town already placed")
	ErrIllegalMove = errors.New("illegal move")
)

// Game is the rules engine. It owns both players and the zobrist table and is
// the only code that mutates the board. It does not track whose turn it is:
// every call names the acting player, which keeps Execute and Undo composable
// inside a recursive search.
type Game struct {
	light   *Player
	dark    *Player
	zobrist *Zobrist

	// pieceHash is the XOR of every piece key currently on the board,
	// maintained incrementally by relocate/remove/restore/PlaceTown.
	pieceHash uint64

	onFinish func(winner Side)
	winner   Side
	finished bool
}

type GameOption func(*Game)

// WithSeed fixes the seed of the zobrist table.
func WithSeed(seed uint64) GameOption {
	return func(g *Game) {
		g.zobrist = NewZobrist(seed)
	}
}

// WithPlayers replaces the standard armies, e.g. to set up a test position.
func WithPlayers(light, dark *Player) GameOption {
	return func(g *Game) {
		if light == nil || dark == nil || light.side != Light || dark.side != Dark {
			panic("WithPlayers needs a light and a dark player")
		}
		g.light = light
		g.dark = dark
	}
}

// NewGame sets up a match with the standard starting armies and no towns.
func NewGame(options ...GameOption) *Game {
	g := &Game{
		light: NewPlayer(Light),
		dark:  NewPlayer(Dark),
	}
	for _, option := range options {
		option(g)
	}
	if g.zobrist == nil {
		g.zobrist = NewZobrist(uint64(time.Now().UnixNano()))
	}
	g.pieceHash = g.zobrist.hashArmy(Light, g.light.army()) ^ g.zobrist.hashArmy(Dark, g.dark.army())
	return g
}

func (g *Game) Player(side Side) *Player {
	if side == Light {
		return g.light
	}
	return g.dark
}

func (g *Game) Enemy(p *Player) *Player {
	return g.Player(p.side.Opponent())
}

// SetOnFinish registers the callback invoked with the winner when the match ends.
func (g *Game) SetOnFinish(callback func(winner Side)) {
	g.onFinish = callback
}

// EndGame records the winner and notifies the finish callback.
func (g *Game) EndGame(winner Side) {
	g.winner = winner
	g.finished = true
	log.Info().Stringer("winner", winner).Msg("game over")
	if g.onFinish != nil {
		g.onFinish(winner)
	}
}

// Winner returns the side reported through EndGame, if any.
func (g *Game) Winner() (Side, bool) {
	return g.winner, g.finished
}

func (g *Game) Finished() bool {
	return g.finished
}

// State returns a snapshot of both armies.
func (g *Game) State() State {
	return State{Light: g.light.army(), Dark: g.dark.army()}
}

// Hash returns the zobrist hash of the current position with side to move.
func (g *Game) Hash(side Side) uint64 {
	return g.pieceHash ^ g.zobrist.toMove(side)
}

// HashState hashes a snapshot with the table of this match.
func (g *Game) HashState(side Side, s State) uint64 {
	return g.zobrist.hashArmy(Light, s.Light) ^ g.zobrist.hashArmy(Dark, s.Dark) ^ g.zobrist.toMove(side)
}

// CalculateHash recomputes Hash from scratch.
func (g *Game) CalculateHash(side Side) uint64 {
	return g.HashState(side, g.State())
}

// Moves returns every legal move of p's army, or the single finishing move if
// one exists.
func (g *Game) Moves(p *Player) []Move {
	return GenerateMoves(p, g.Enemy(p))
}

// PossibleMoves lists all moves of the soldier at pos, finishing moves included.
func (g *Game) PossibleMoves(side Side, pos Position) []Move {
	p := g.Player(side)
	return SoldierMoves(p, g.Enemy(p), pos, true)
}

// TownPositions enumerates the squares side may place its town on: the empty
// squares of its back rank without the two corner columns.
func (g *Game) TownPositions(side Side) []Position {
	y := side.HomeRank()
	out := make([]Position, 0, BoardSize-2)
	for x := 1; x < BoardSize-1; x++ {
		pos := Pos(x, y)
		if g.light.HasSoldier(pos) || g.dark.HasSoldier(pos) {
			continue
		}
		out = append(out, pos)
	}
	return out
}

// PlaceTown places side's town during the placement phase.
func (g *Game) PlaceTown(side Side, pos Position) error {
	if !pos.OnBoard() {
		return fmt.Errorf("place %s town at %s: %w", side, pos, ErrOutOfBounds)
	}
	p := g.Player(side)
	if p.town != nil {
		return fmt.Errorf("place %s town: %w", side, ErrTownPlaced)
	}
	legal := false
	for _, candidate := range g.TownPositions(side) {
		if candidate == pos {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("place %s town at %s: %w", side, pos, ErrInvalidTown)
	}
	p.placeTown(pos)
	g.pieceHash ^= g.zobrist.town(side, pos)
	return nil
}

// Play validates a move chosen outside the search and executes it.
func (g *Game) Play(side Side, m Move) error {
	for _, legal := range g.PossibleMoves(side, m.From) {
		if legal == m {
			g.Execute(g.Player(side), m, false)
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", side, m, ErrIllegalMove)
}

// Execute applies m for p. With testing set, as the search does, nothing
// outside the board is touched: no logging and no end of game.
func (g *Game) Execute(p *Player, m Move, testing bool) {
	enemy := g.Enemy(p)
	if !p.HasSoldier(m.From) {
		panic(fmt.Sprintf("execute %s: %s has no soldier at %s", m, p.side, m.From))
	}

	switch m.Kind {
	case Finish:
		g.relocate(p, m.From, m.To)
	case FireFinish:
	case Fire:
		g.removeSoldier(enemy, m.To)
	case Capture:
		g.removeSoldier(enemy, m.To)
		g.relocate(p, m.From, m.To)
	default:
		g.relocate(p, m.From, m.To)
	}

	if testing {
		return
	}
	log.Info().
		Stringer("side", p.side).
		Stringer("from", m.From).
		Stringer("to", m.To).
		Stringer("kind", m.Kind).
		Msg(moveMessage(m))
	if m.IsFinish() {
		g.EndGame(p.side)
	}
}

// Undo reverts Execute: the mover goes back to its origin and a captured
// soldier is recreated where it stood.
func (g *Game) Undo(p *Player, m Move) {
	if m.Relocates() {
		g.relocate(p, m.To, m.From)
	}
	if pos, ok := m.Killed(); ok {
		g.restoreSoldier(g.Enemy(p), pos)
	}
}

func (g *Game) relocate(p *Player, from, to Position) {
	p.relocate(from, to)
	g.pieceHash ^= g.zobrist.soldier(p.side, from) ^ g.zobrist.soldier(p.side, to)
}

func (g *Game) removeSoldier(p *Player, pos Position) {
	if !p.remove(pos) {
		panic(fmt.Sprintf("no %s soldier to capture at %s", p.side, pos))
	}
	g.pieceHash ^= g.zobrist.soldier(p.side, pos)
}

func (g *Game) restoreSoldier(p *Player, pos Position) {
	p.restore(pos)
	g.pieceHash ^= g.zobrist.soldier(p.side, pos)
}

func moveMessage(m Move) string {
	switch m.Kind {
	case Finish:
		return "stormed the enemy town"
	case FireFinish:
		return "shelled the enemy town"
	case Fire:
		return "cannon hit an enemy soldier"
	case Capture:
		return "captured an enemy soldier"
	case Retreat:
		return "fell back under threat"
	case Slide:
		return "cannon repositioned"
	default:
		return "advanced"
	}
}
