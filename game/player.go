package game

import (
	"fmt"
	"sort"
)

// Player owns one army: its soldiers keyed by square, an optional town, the
// soldier currently selected by a UI and the controller that plays its turns.
type Player struct {
	side       Side
	soldiers   map[Position]*Soldier
	town       *Town
	selected   *Soldier
	controller Controller
}

// NewPlayer creates a player with the standard starting army: five files of
// three soldiers each, light on the odd files near y=9, dark on the even files
// near y=0.
func NewPlayer(side Side) *Player {
	p := NewEmptyPlayer(side)
	firstFile, firstRank := 1, 8
	if side == Dark {
		firstFile, firstRank = 0, 3
	}
	for x := firstFile; x < BoardSize; x += 2 {
		for y := firstRank; y > firstRank-3; y-- {
			pos := Pos(x, y)
			p.soldiers[pos] = NewSoldier(pos)
		}
	}
	return p
}

// NewEmptyPlayer creates a player without soldiers, used to set up custom positions.
func NewEmptyPlayer(side Side) *Player {
	return &Player{
		side:     side,
		soldiers: make(map[Position]*Soldier),
	}
}

func (p *Player) Side() Side {
	return p.side
}

// AddSoldier places an extra soldier during setup.
func (p *Player) AddSoldier(pos Position) error {
	if !pos.OnBoard() {
		return fmt.Errorf("add soldier at %s: %w", pos, ErrOutOfBounds)
	}
	if _, ok := p.soldiers[pos]; ok {
		return fmt.Errorf("add soldier: %s is already occupied by a %s soldier", pos, p.side)
	}
	p.soldiers[pos] = NewSoldier(pos)
	return nil
}

func (p *Player) SoldierAt(pos Position) *Soldier {
	return p.soldiers[pos]
}

func (p *Player) HasSoldier(pos Position) bool {
	_, ok := p.soldiers[pos]
	return ok
}

// Soldiers returns the army ordered by position so that generation is deterministic.
func (p *Player) Soldiers() []*Soldier {
	out := make([]*Soldier, 0, len(p.soldiers))
	for _, s := range p.soldiers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].pos.less(out[j].pos) })
	return out
}

func (p *Player) ArmySize() int {
	return len(p.soldiers)
}

func (p *Player) Town() *Town {
	return p.town
}

// IsTown reports whether pos holds this player's town.
func (p *Player) IsTown(pos Position) bool {
	return p.town != nil && p.town.pos == pos
}

func (p *Player) placeTown(pos Position) {
	p.town = &Town{pos: pos}
}

// relocate moves the soldier at from to to and keeps the map key in sync
// with the soldier's own position.
func (p *Player) relocate(from, to Position) *Soldier {
	s, ok := p.soldiers[from]
	if !ok {
		panic(fmt.Sprintf("%s has no soldier at %s", p.side, from))
	}
	if s.pos != from {
		panic(fmt.Sprintf("%s soldier keyed at %s reports position %s", p.side, from, s.pos))
	}
	if _, taken := p.soldiers[to]; taken {
		panic(fmt.Sprintf("%s cannot move %s onto its own soldier at %s", p.side, from, to))
	}
	delete(p.soldiers, from)
	s.pos = to
	p.soldiers[to] = s
	return s
}

func (p *Player) remove(pos Position) bool {
	s, ok := p.soldiers[pos]
	if !ok {
		return false
	}
	if s == p.selected {
		p.selected = nil
	}
	delete(p.soldiers, pos)
	return true
}

// restore recreates a captured soldier with default state.
func (p *Player) restore(pos Position) {
	if _, taken := p.soldiers[pos]; taken {
		panic(fmt.Sprintf("cannot restore %s soldier at occupied %s", p.side, pos))
	}
	p.soldiers[pos] = NewSoldier(pos)
}

// Select marks the soldier at pos as chosen by the UI.
func (p *Player) Select(pos Position) bool {
	s, ok := p.soldiers[pos]
	if !ok {
		return false
	}
	p.selected = s
	return true
}

func (p *Player) Selected() *Soldier {
	return p.selected
}

func (p *Player) ClearSelection() {
	p.selected = nil
}

func (p *Player) SetController(c Controller) {
	p.controller = c
}

func (p *Player) Controller() Controller {
	return p.controller
}

// PlayTurn lets the attached controller play one turn. It reports whether the
// position changed.
func (p *Player) PlayTurn(state State) bool {
	if p.controller == nil {
		panic(fmt.Sprintf("%s player has no controller", p.side))
	}
	return p.controller.PlayTurn(state)
}

// ChooseTown asks the controller for a town square among candidates.
func (p *Player) ChooseTown(candidates []Position) Position {
	if p.controller == nil {
		panic(fmt.Sprintf("%s player has no controller", p.side))
	}
	return p.controller.SetTownPosition(candidates)
}

func (p *Player) army() Army {
	a := Army{Soldiers: make([]Position, 0, len(p.soldiers))}
	for _, s := range p.Soldiers() {
		a.Soldiers = append(a.Soldiers, s.pos)
	}
	if p.town != nil {
		pos := p.town.pos
		a.Town = &pos
	}
	return a
}
