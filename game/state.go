package game

// Army is a read-only snapshot of one side's pieces.
type Army struct {
	Soldiers []Position `json:"soldiers" yaml:"soldiers"`
	Town     *Position  `json:"town,omitempty" yaml:"town,omitempty"`
}

// State is a read-only snapshot of the whole board, used for rendering and
// for comparing positions.
type State struct {
	Light Army `json:"light" yaml:"light"`
	Dark  Army `json:"dark" yaml:"dark"`
}

func (s State) Army(side Side) Army {
	if side == Light {
		return s.Light
	}
	return s.Dark
}
