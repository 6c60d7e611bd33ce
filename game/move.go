package game

import "fmt"

// Kind tags what a move does. Shooting is folded into Fire and FireFinish so
// that contradictory combinations cannot be built.
type Kind int

const (
	Advance    Kind = iota // quiet step forward
	Capture                // step or lateral move onto an enemy soldier
	Retreat                // two ranks back while threatened
	Slide                  // cannon repositioning
	Fire                   // cannon shot that removes an enemy soldier
	Finish                 // step onto the enemy town
	FireFinish             // cannon shot at the enemy town
)

var kindNames = [...]string{
	Advance:    "advance",
	Capture:    "capture",
	Retreat:    "retreat",
	Slide:      "slide",
	Fire:       "fire",
	Finish:     "finish",
	FireFinish: "fire-finish",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Move is an immutable description of one soldier's transition. For shots,
// From stays occupied and To is the square that was hit.
type Move struct {
	From Position `json:"from" yaml:"from"`
	To   Position `json:"to" yaml:"to"`
	Kind Kind     `json:"kind" yaml:"kind"`
}

func (m Move) IsFinish() bool {
	return m.Kind == Finish || m.Kind == FireFinish
}

func (m Move) IsKill() bool {
	return m.Kind == Capture || m.Kind == Fire
}

func (m Move) IsShoot() bool {
	return m.Kind == Fire || m.Kind == FireFinish
}

func (m Move) IsRetreat() bool {
	return m.Kind == Retreat
}

func (m Move) IsSlide() bool {
	return m.Kind == Slide
}

// IsNoisy reports moves that capture or fire. Quiescence keeps searching those.
func (m Move) IsNoisy() bool {
	return m.IsKill() || m.IsShoot() || m.IsFinish()
}

// Killed returns the square of the enemy soldier this move removes.
func (m Move) Killed() (Position, bool) {
	if m.IsKill() {
		return m.To, true
	}
	return Position{}, false
}

// Relocates reports whether the moving soldier ends up on To.
func (m Move) Relocates() bool {
	return !m.IsShoot()
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s %s", m.From, m.To, m.Kind)
}

// ScoredMove pairs a move with its heuristic value from the mover's point of view.
type ScoredMove struct {
	Move
	Score float64
}
