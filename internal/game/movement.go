package game

// handleInput applies one tick of input. Shoot and place-bomb fire once per
// press; held movement keys move the player every tick, and the facing turns
// even when the move is blocked. Slide tiles act on every player regardless
// of input.
func (e *Engine) handleInput(in Input) {
	if !e.InputDisabled {
		for _, key := range in.Pressed {
			for _, p := range e.State.Players {
				e.act(p, key)
			}
		}
	}

	for _, p := range e.State.Players {
		if !e.InputDisabled {
			c := p.Controls
			if in.Held.Has(c.Up) {
				e.move(p, 0, -p.Speed)
				p.Facing = North
			}
			if in.Held.Has(c.Left) {
				e.move(p, -p.Speed, 0)
				p.Facing = West
			}
			if in.Held.Has(c.Down) {
				e.move(p, 0, p.Speed)
				p.Facing = South
			}
			if in.Held.Has(c.Right) {
				e.move(p, p.Speed, 0)
				p.Facing = East
			}
		}
		e.react(p)
	}
}

// act handles a discrete key press for p.
func (e *Engine) act(p *Player, key string) {
	ctrl, ok := p.Controls.Lookup(key)
	if !ok {
		return
	}
	switch ctrl {
	case ControlShoot:
		e.shoot(p)
	case ControlPlaceBomb:
		if p.BombEnabled {
			e.placeBomb(p)
		}
	}
}

// move attempts to shift p by (vx, vy). Each axis is applied and checked on
// its own and rolled back when blocked, so a diagonal push into a wall still
// slides along it.
func (e *Engine) move(p *Player, vx, vy int) {
	if vx != 0 {
		p.Rect.X += vx
		p.ShiftColliders()
		if e.blocked(p) {
			p.Rect.X -= vx
			p.ShiftColliders()
		}
	}
	if vy != 0 {
		p.Rect.Y += vy
		p.ShiftColliders()
		if e.blocked(p) {
			p.Rect.Y -= vy
			p.ShiftColliders()
		}
	}
}

// blocked reports whether p, at its current position, overlaps a blocking
// tile under any bounding-box corner, another player, a solid bomb or an
// enemy.
func (e *Engine) blocked(p *Player) bool {
	g := e.State.Grid
	r := p.Rect
	if g.TileAt(r.X, r.Y).Blocked() ||
		g.TileAt(r.Right(), r.Y).Blocked() ||
		g.TileAt(r.X, r.Bottom()).Blocked() ||
		g.TileAt(r.Right(), r.Bottom()).Blocked() {
		return true
	}

	for _, other := range e.State.Players {
		if other != p && CircleCircle(p.Collider, other.Collider) {
			return true
		}
	}

	if e.bombBlocks(p) {
		return true
	}

	for _, en := range e.State.Enemies {
		if CircleCircle(p.Collider, en.Collider) {
			return true
		}
	}
	return false
}

// react carries p along slide tiles. Once the player is fully inside a slide
// cell it is pushed a quarter turn past the tile's facing every tick until it
// comes to rest fully inside a non-slide cell.
func (e *Engine) react(p *Player) {
	g := e.State.Grid
	origin := g.CellRect(g.CellOf(p.Rect.X, p.Rect.Y))
	enclosed := Enclosed(p.Rect, origin)

	if g.TileAt(p.Rect.X, p.Rect.Y).Type.IsSlide() && (enclosed || p.sliding) {
		if enclosed {
			p.lastSlide = origin
		}
		p.Facing = g.TileAt(p.lastSlide.X, p.lastSlide.Y).Facing.Next()
		p.sliding = true
		dx, dy := p.Facing.Delta()
		e.move(p, dx*p.Speed, dy*p.Speed)
		return
	}
	if enclosed {
		p.sliding = false
	}
}
