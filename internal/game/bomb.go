package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Bomb is a placed bomb, snapped to the center of its cell.
type Bomb struct {
	ID       uuid.UUID
	Cell     Cell
	Collider Circle
	Scope    int // Blast reach in cells along each direction
	Fuse     Timer

	// passThrough holds the players that stood on the bomb when it was placed.
	// A player leaves the set once it steps off, and from then on the bomb is
	// solid for it too.
	passThrough mapset.Set[int]
}

// placeBomb drops a bomb on the cell under p's collider center and lights
// its fuse. Stacking on an occupied cell is allowed.
func (e *Engine) placeBomb(p *Player) *Bomb {
	s := e.State
	g := s.Grid
	cell := g.CellOf(p.Collider.X, p.Collider.Y)
	box := g.CellRect(cell)

	b := &Bomb{
		ID:   uuid.New(),
		Cell: cell,
		Collider: Circle{
			X: box.X + box.W/2,
			Y: box.Y + box.H/2,
			R: e.Config.BombSize / 2,
		},
		Scope:       e.Config.BombScope,
		passThrough: mapset.New[int](),
	}
	b.Fuse.Start(e.now)
	for _, pl := range s.Players {
		if CircleCircle(pl.Collider, b.Collider) {
			b.passThrough.Put(pl.Index)
		}
	}

	s.Bombs = append(s.Bombs, b)
	e.log.WithFields(logrus.Fields{
		"component": "bomb",
		"bomb":      b.ID,
		"player":    p.Index,
		"cell":      cell,
	}).Debug("bomb placed")
	return b
}

// bombBlocks reports whether any bomb is solid for p at its current position.
// Every bomb is visited so players that stepped off leave the pass-through set.
func (e *Engine) bombBlocks(p *Player) bool {
	hit := false
	for _, b := range e.State.Bombs {
		if !CircleCircle(p.Collider, b.Collider) {
			b.passThrough.Remove(p.Index)
			continue
		}
		if !b.passThrough.Has(p.Index) {
			hit = true
		}
	}
	return hit
}

// tickBombs detonates every bomb whose fuse has burned out and keeps the rest.
func (e *Engine) tickBombs() {
	s := e.State
	remaining := make([]*Bomb, 0, len(s.Bombs))
	var detonated []*Bomb
	for _, b := range s.Bombs {
		if b.Fuse.Elapsed(e.now) > e.Config.BombFuse {
			detonated = append(detonated, b)
		} else {
			remaining = append(remaining, b)
		}
	}
	s.Bombs = remaining

	for _, b := range detonated {
		e.blowUp(b)
	}
}

// blowUp carves the blast into the terrain and damages the players caught in
// it.
//
// Each of the four rays covers cells 1..Scope. In BlastSkipThrough mode every
// brick on a ray becomes grass whatever lies in between. In
// BlastClampToObstruction mode a ray stops at the first blocking tile, which
// is destroyed if it is a brick. A player loses one life when its collider
// touches the horizontal or vertical blast band or the bomb itself.
func (e *Engine) blowUp(b *Bomb) Explosion {
	g := e.State.Grid
	ev := Explosion{BombID: b.ID, Cell: b.Cell, Cells: []Cell{b.Cell}}

	var reach [directionCount]int
	for d := South; d < directionCount; d++ {
		dx, dy := d.Delta()
		for i := 1; i <= b.Scope; i++ {
			c := Cell{Col: b.Cell.Col + dx*i, Row: b.Cell.Row + dy*i}
			clamped := e.Config.BlastMode == BlastClampToObstruction && g.CellAt(c.Col, c.Row).Blocked()
			if clamped && g.TypeAt(c.Col, c.Row) != Brick {
				break
			}
			if g.convertCell(c.Col, c.Row) {
				ev.Destroyed = append(ev.Destroyed, c)
			}
			if g.InBounds(c.Col, c.Row) {
				ev.Cells = append(ev.Cells, c)
			}
			reach[d] = i
			if clamped {
				break
			}
		}
	}

	ts := g.TileSize
	center := g.CellRect(b.Cell)
	horizontal := Rect{
		X: center.X - reach[West]*ts,
		Y: center.Y,
		W: (reach[West] + 1 + reach[East]) * ts,
		H: ts,
	}
	vertical := Rect{
		X: center.X,
		Y: center.Y - reach[North]*ts,
		W: ts,
		H: (reach[North] + 1 + reach[South]) * ts,
	}

	for _, p := range e.State.Players {
		if CircleRect(p.Collider, horizontal) || CircleRect(p.Collider, vertical) ||
			CircleCircle(p.Collider, b.Collider) {
			p.Life--
			ev.Victims = append(ev.Victims, p.Index)
			e.emit(PlayerHit{Player: p.Index, Cause: CauseBomb, Delta: -1, Life: p.Life})
		}
	}

	e.log.WithFields(logrus.Fields{
		"component": "bomb",
		"bomb":      b.ID,
		"cell":      b.Cell,
		"destroyed": len(ev.Destroyed),
		"victims":   ev.Victims,
	}).Info("bomb exploded")
	e.emit(ev)
	return ev
}
