package game

import (
	"errors"
	"fmt"
)

const BoardSize = 10

var ErrOutOfBounds = errors.New("position is off the board")

// Position is a board square, 0 <= X,Y < BoardSize.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// NewPosition validates the coordinates before building a Position.
func NewPosition(x, y int) (Position, error) {
	p := Position{X: x, Y: y}
	if !p.OnBoard() {
		return Position{}, fmt.Errorf("(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return p, nil
}

func (p Position) OnBoard() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Add offsets the position by (dx, dy) without bounds checking.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders positions column first, used to keep snapshots deterministic.
func (p Position) less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// chebyshev is the king-move distance between two squares.
func chebyshev(a, b Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}
