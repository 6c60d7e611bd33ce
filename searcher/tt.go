package searcher

import (
	"fmt"

	"cannon/game"
)

// transpositionTable maps a position hash to the best move found there.
// Only the move is kept, not its score, depth or bound.
type transpositionTable struct {
	entries map[uint64]game.Move
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{entries: make(map[uint64]game.Move, 1<<12)}
}

func (t *transpositionTable) lookup(key uint64) (game.Move, bool) {
	m, ok := t.entries[key]
	return m, ok
}

// store records m as the best move of the position hashed to key. playable
// tells whether a move is legal in that position: an existing entry that is
// not means two positions share the key, and every later lookup would be
// wrong.
func (t *transpositionTable) store(key uint64, m game.Move, playable func(game.Move) bool) {
	if old, ok := t.entries[key]; ok && old != m && !playable(old) {
		panic(fmt.Sprintf("transposition table collision on %#x: stored %s, new %s", key, old, m))
	}
	t.entries[key] = m
}

func (t *transpositionTable) len() int {
	return len(t.entries)
}

func (t *transpositionTable) clear() {
	t.entries = make(map[uint64]game.Move, 1<<12)
}
