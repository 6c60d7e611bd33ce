package game

import "golang.org/x/exp/rand"

// piece indices into the zobrist table
const (
	lightSoldier = iota
	lightTown
	darkSoldier
	darkTown
	zobristPieces
)

// Zobrist holds the random keys used to hash positions: one key per piece
// kind per square and one per side to move. A table is built once per match
// from an explicit seed and never changes afterwards.
type Zobrist struct {
	pieces [BoardSize][BoardSize][zobristPieces]uint64
	turn   [2]uint64
}

func NewZobrist(seed uint64) *Zobrist {
	rng := rand.New(rand.NewSource(seed))
	next := func() uint64 {
		// a zero key would make the piece invisible to the hash
		v := rng.Uint64()
		for v == 0 {
			v = rng.Uint64()
		}
		return v
	}

	z := &Zobrist{}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			for k := 0; k < zobristPieces; k++ {
				z.pieces[x][y][k] = next()
			}
		}
	}
	z.turn[Light] = next()
	z.turn[Dark] = next()
	return z
}

func (z *Zobrist) soldier(side Side, pos Position) uint64 {
	if side == Light {
		return z.pieces[pos.X][pos.Y][lightSoldier]
	}
	return z.pieces[pos.X][pos.Y][darkSoldier]
}

func (z *Zobrist) town(side Side, pos Position) uint64 {
	if side == Light {
		return z.pieces[pos.X][pos.Y][lightTown]
	}
	return z.pieces[pos.X][pos.Y][darkTown]
}

func (z *Zobrist) toMove(side Side) uint64 {
	return z.turn[side]
}

// hashArmy XORs the keys of every piece of one army.
func (z *Zobrist) hashArmy(side Side, a Army) uint64 {
	var h uint64
	for _, pos := range a.Soldiers {
		h ^= z.soldier(side, pos)
	}
	if a.Town != nil {
		h ^= z.town(side, *a.Town)
	}
	return h
}
