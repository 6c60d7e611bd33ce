package player

import (
	"fmt"

	"cannon/game"

	"github.com/rs/zerolog/log"
)

// Human is driven by a user interface. The UI selects a soldier, shows the
// moves returned by Select and queues the clicked target with Choose; the
// next PlayTurn commits it.
type Human struct {
	game    *game.Game
	side    game.Side
	pending *game.Move
	town    *game.Position
}

func NewHuman(g *game.Game, side game.Side) *Human {
	return &Human{game: g, side: side}
}

// Select marks the soldier at pos and returns all its moves, finishing moves
// included. It returns nil when pos holds no own soldier.
func (h *Human) Select(pos game.Position) []game.Move {
	p := h.game.Player(h.side)
	if !p.Select(pos) {
		p.ClearSelection()
		return nil
	}
	return h.game.PossibleMoves(h.side, pos)
}

// Choose queues the move of the selected soldier that targets to.
func (h *Human) Choose(to game.Position) error {
	selected := h.game.Player(h.side).Selected()
	if selected == nil {
		return fmt.Errorf("%s has no soldier selected: %w", h.side, game.ErrIllegalMove)
	}
	for _, m := range h.game.PossibleMoves(h.side, selected.Pos()) {
		if m.To == to {
			h.pending = &m
			return nil
		}
	}
	return fmt.Errorf("%s soldier at %s cannot reach %s: %w", h.side, selected.Pos(), to, game.ErrIllegalMove)
}

// ChooseTown queues the square picked for the town.
func (h *Human) ChooseTown(pos game.Position) {
	h.town = &pos
}

// SetTownPosition returns the queued town square, or the first candidate if
// none was queued or the queued one is not legal.
func (h *Human) SetTownPosition(candidates []game.Position) game.Position {
	if h.town != nil {
		for _, c := range candidates {
			if c == *h.town {
				return c
			}
		}
		log.Warn().Stringer("side", h.side).Stringer("town", *h.town).Msg("queued town square is not available")
	}
	return candidates[0]
}

// PlayTurn commits the queued move. It reports false when nothing was queued
// or the move is no longer legal.
func (h *Human) PlayTurn(state game.State) bool {
	if h.pending == nil {
		return false
	}
	m := *h.pending
	h.pending = nil
	defer h.game.Player(h.side).ClearSelection()

	if err := h.game.Play(h.side, m); err != nil {
		log.Warn().Err(err).Msg("rejected move")
		return false
	}
	return true
}
