package game

// Soldier is a mobile piece. Its position changes as the game goes on.
type Soldier struct {
	pos Position
}

func NewSoldier(pos Position) *Soldier {
	return &Soldier{pos: pos}
}

func (s *Soldier) Pos() Position {
	return s.pos
}

// Town never moves once placed.
type Town struct {
	pos Position
}

func (t *Town) Pos() Position {
	return t.pos
}
