package game

import "gonum.org/v1/gonum/floats"

const NumFeatures = 8

// Feature indices into Weights.
const (
	FeatureProximity = iota // closeness of the landing square to the enemy town
	FeatureProgress         // proximity gained compared with the origin
	FeatureFinish           // takes the enemy town
	FeatureDefense          // joins the ring around the own town
	FeatureRetreat          // retreats a threatened soldier
	FeatureShoot            // fires a cannon
	FeatureArmy             // army size difference after the move
	FeatureKill             // removes an enemy soldier
)

// Weights scales each feature of a move evaluation.
type Weights [NumFeatures]float64

var DefaultWeights = Weights{
	FeatureProximity: 2,
	FeatureProgress:  4,
	FeatureFinish:    1000,
	FeatureDefense:   3,
	FeatureRetreat:   5,
	FeatureShoot:     8,
	FeatureArmy:      1,
	FeatureKill:      10,
}

// Eval scores m for p as the weighted sum of its features.
func (g *Game) Eval(p *Player, m Move, w Weights) ScoredMove {
	f := g.Features(p, m)
	return ScoredMove{Move: m, Score: floats.Dot(f[:], w[:])}
}

// Features extracts the evaluation features of m for p.
func (g *Game) Features(p *Player, m Move) [NumFeatures]float64 {
	var f [NumFeatures]float64
	enemy := g.Enemy(p)

	landing := m.From
	if m.Relocates() {
		landing = m.To
	}

	if town := enemy.Town(); town != nil {
		before := proximity(m.From, town.pos)
		after := proximity(landing, town.pos)
		f[FeatureProximity] = after
		f[FeatureProgress] = after - before
	}
	if town := p.Town(); town != nil {
		if chebyshev(landing, town.pos) == 1 && chebyshev(m.From, town.pos) != 1 {
			f[FeatureDefense] = 1
		}
	}

	enemies := enemy.ArmySize()
	if m.IsKill() {
		enemies--
		f[FeatureKill] = 1
	}
	f[FeatureArmy] = float64(p.ArmySize() - enemies)

	if m.IsFinish() {
		f[FeatureFinish] = 1
	}
	if m.IsRetreat() {
		f[FeatureRetreat] = 1
	}
	if m.IsShoot() {
		f[FeatureShoot] = 1
	}
	return f
}

// proximity is 1 next to the town and falls to 0 at the far side of the
// board. Squares too far off to the side to still reach the town with
// diagonal steps score 0.
func proximity(from, town Position) float64 {
	if !reachable(from, town) {
		return 0
	}
	return float64(BoardSize-1-chebyshev(from, town)) / float64(BoardSize-1)
}

// reachable approximates whether a soldier at from can still close in on
// town: every forward step can also shift one file, plus one final sideways
// capture.
func reachable(from, town Position) bool {
	return abs(town.X-from.X) <= abs(town.Y-from.Y)+1
}
