package game

// Side identifies one of the two armies.
type Side int

const (
	Light Side = iota
	Dark
)

func (s Side) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Light {
		return Dark
	}
	return Light
}

// Direction is the forward sign along y. Light attacks from the high ranks.
func (s Side) Direction() int {
	if s == Light {
		return -1
	}
	return 1
}

// HomeRank is the back rank a side places its town on.
func (s Side) HomeRank() int {
	if s == Light {
		return BoardSize - 1
	}
	return 0
}
