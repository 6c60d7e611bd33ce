package game

// cannonAxes lists the six lines a cannon can form through a soldier standing
// at one end of it: the vertical axis and both diagonals, each with the other
// two soldiers on either side. The cannon fires against the axis and slides
// along it.
var cannonAxes = [6][2]int{
	{0, 1}, {0, -1},
	{1, 1}, {-1, -1},
	{-1, 1}, {1, -1},
}

// moveList keeps captures ahead of quiet moves.
type moveList struct {
	captures []Move
	quiet    []Move
	finish   *Move
}

func (l *moveList) moves() []Move {
	if l.finish != nil {
		return []Move{*l.finish}
	}
	out := make([]Move, 0, len(l.captures)+len(l.quiet))
	out = append(out, l.captures...)
	return append(out, l.quiet...)
}

// GenerateMoves returns every legal move of player's army. If any soldier can
// take the enemy town, that single move is returned and nothing else is
// generated.
func GenerateMoves(player, enemy *Player) []Move {
	var l moveList
	for _, s := range player.Soldiers() {
		if l.addSoldier(player, enemy, s.pos, true) {
			break
		}
	}
	return l.moves()
}

// SoldierMoves returns the legal moves of the soldier at from. With
// exhaustive set, a finishing move does not stop generation, so a UI can show
// every option of the piece; the finishing moves are listed first.
func SoldierMoves(player, enemy *Player, from Position, exhaustive bool) []Move {
	if !player.HasSoldier(from) {
		return nil
	}
	var l moveList
	l.addSoldier(player, enemy, from, !exhaustive)
	return l.moves()
}

// addSoldier appends the moves of one soldier. It returns true when it
// stopped at a finishing move.
func (l *moveList) addSoldier(player, enemy *Player, from Position, stopAtFinish bool) bool {
	d := player.side.Direction()

	finish := func(m Move) bool {
		if stopAtFinish {
			l.finish = &m
			return true
		}
		l.captures = append([]Move{m}, l.captures...)
		return false
	}

	// advance: front-left, front, front-right
	for dx := -1; dx <= 1; dx++ {
		to := from.Add(dx, d)
		if !to.OnBoard() || player.HasSoldier(to) {
			continue
		}
		switch {
		case enemy.IsTown(to):
			if finish(Move{From: from, To: to, Kind: Finish}) {
				return true
			}
		case enemy.HasSoldier(to):
			l.captures = append(l.captures, Move{From: from, To: to, Kind: Capture})
		default:
			l.quiet = append(l.quiet, Move{From: from, To: to, Kind: Advance})
		}
	}

	// sideways only to capture
	for _, dx := range [2]int{-1, 1} {
		to := from.Add(dx, 0)
		switch {
		case !to.OnBoard():
		case enemy.IsTown(to):
			if finish(Move{From: from, To: to, Kind: Finish}) {
				return true
			}
		case enemy.HasSoldier(to):
			l.captures = append(l.captures, Move{From: from, To: to, Kind: Capture})
		}
	}

	for _, axis := range cannonAxes {
		dx, dy := axis[0], axis[1]
		if !player.HasSoldier(from.Add(dx, dy)) || !player.HasSoldier(from.Add(2*dx, 2*dy)) {
			continue
		}

		slide := from.Add(3*dx, 3*dy)
		if slide.OnBoard() && isEmpty(player, enemy, slide) && !player.IsTown(slide) && !enemy.IsTown(slide) {
			l.quiet = append(l.quiet, Move{From: from, To: slide, Kind: Slide})
		}

		front := from.Add(-dx, -dy)
		if !front.OnBoard() || !isEmpty(player, enemy, front) {
			continue
		}
		for k := 2; k <= 3; k++ {
			shot := from.Add(-k*dx, -k*dy)
			if !shot.OnBoard() || player.HasSoldier(shot) {
				break
			}
			if enemy.IsTown(shot) {
				if finish(Move{From: from, To: shot, Kind: FireFinish}) {
					return true
				}
				break
			}
			if enemy.HasSoldier(shot) {
				l.captures = append(l.captures, Move{From: from, To: shot, Kind: Fire})
				break
			}
		}
	}

	if threatened(enemy, from, d) {
		for _, dx := range [3]int{-2, 0, 2} {
			to := from.Add(dx, -2*d)
			if to.OnBoard() && isEmpty(player, enemy, to) && !player.IsTown(to) {
				l.quiet = append(l.quiet, Move{From: from, To: to, Kind: Retreat})
			}
		}
	}
	return false
}

// threatened reports an enemy soldier on one of the five squares in front of
// or beside from.
func threatened(enemy *Player, from Position, d int) bool {
	for dx := -1; dx <= 1; dx++ {
		if enemy.HasSoldier(from.Add(dx, d)) {
			return true
		}
	}
	return enemy.HasSoldier(from.Add(-1, 0)) || enemy.HasSoldier(from.Add(1, 0))
}

func isEmpty(player, enemy *Player, pos Position) bool {
	return !player.HasSoldier(pos) && !enemy.HasSoldier(pos)
}
