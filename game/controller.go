package game

// Controller is the strategy that plays a side: a human UI, a random player
// or the search.
type Controller interface {
	// SetTownPosition picks the town square among the legal candidates.
	SetTownPosition(candidates []Position) Position
	// PlayTurn plays at most one move and reports whether the position changed.
	PlayTurn(state State) bool
}
