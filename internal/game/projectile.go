package game

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Bullet is a projectile with sub-pixel position. Phasing bullets, fired by
// enemies, ignore terrain.
type Bullet struct {
	X       float64
	Y       float64
	Dir     Direction
	Speed   float64
	Size    int
	Phasing bool
}

// Rect returns the bullet's box on whole pixels.
func (b *Bullet) Rect() Rect {
	return Rect{X: int(math.Floor(b.X)), Y: int(math.Floor(b.Y)), W: b.Size, H: b.Size}
}

func (e *Engine) newBullet(x, y int, dir Direction, phasing bool) *Bullet {
	return &Bullet{
		X:       float64(x),
		Y:       float64(y),
		Dir:     dir,
		Speed:   e.Config.BulletSpeed,
		Size:    e.Config.BulletSize,
		Phasing: phasing,
	}
}

// shoot fires from p's leading edge. With the bullet upgrade it fires one
// bullet in each cardinal direction instead.
func (e *Engine) shoot(p *Player) {
	r := p.Rect
	w, h := r.W, r.H
	s := e.State

	if p.BulletUpgrade {
		s.Bullets = append(s.Bullets,
			e.newBullet(r.X+w, r.Y+h/2, East, false),
			e.newBullet(r.X-w, r.Y+h/2, West, false),
			e.newBullet(r.X+w/2, r.Y+h, South, false),
			e.newBullet(r.X+w/2, r.Y-h, North, false),
		)
		return
	}

	var b *Bullet
	switch p.Facing {
	case East:
		b = e.newBullet(r.X+w, r.Y+h/2, East, false)
	case West:
		b = e.newBullet(r.X-w/4, r.Y+h/2, West, false)
	case South:
		b = e.newBullet(r.X+w/2, r.Y+h, South, false)
	case North:
		b = e.newBullet(r.X+w/2, r.Y-h/4, North, false)
	default:
		return
	}
	s.Bullets = append(s.Bullets, b)
}

// tickBullets advances every player bullet and keeps the survivors.
func (e *Engine) tickBullets() {
	s := e.State
	remaining := make([]*Bullet, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		if e.advanceBullet(b, CauseBullet) {
			remaining = append(remaining, b)
		}
	}
	s.Bullets = remaining
}

// tickEnemyBullets advances every enemy bullet and keeps the survivors.
func (e *Engine) tickEnemyBullets() {
	s := e.State
	remaining := make([]*Bullet, 0, len(s.EnemyBullets))
	for _, b := range s.EnemyBullets {
		if e.advanceBullet(b, CauseEnemyBullet) {
			remaining = append(remaining, b)
		}
	}
	s.EnemyBullets = remaining
}

// advanceBullet moves b one step and resolves what it hits. It returns false
// when the bullet is spent.
//
// Terrain comes first: a brick under the leading or trailing corner is
// destroyed and absorbs the bullet, steel stops it. Then players are tested in
// order; any player can be hit, including the shooter. A shield turns the hit
// into a one-life heal.
func (e *Engine) advanceBullet(b *Bullet, cause HitCause) bool {
	dx, dy := b.Dir.Delta()
	b.X += float64(dx) * b.Speed
	b.Y += float64(dy) * b.Speed

	g := e.State.Grid
	r := b.Rect()
	x, y := r.X, r.Y

	if !b.Phasing {
		switch {
		case g.TileAt(x, y).Type == Brick:
			g.ConvertToGrass(x, y)
			return false
		case g.TileAt(x+b.Size, y+b.Size).Type == Brick:
			g.ConvertToGrass(x+b.Size, y+b.Size)
			return false
		case g.TileAt(x, y).Type == Steel:
			return false
		}
	}

	for _, p := range e.State.Players {
		if !CircleRect(p.Collider, r) {
			continue
		}
		delta := -1
		if p.Shield {
			delta = 1
		}
		p.Life += delta
		e.log.WithFields(logrus.Fields{"player": p.Index, "delta": delta, "life": p.Life}).Debug("bullet hit")
		e.emit(PlayerHit{Player: p.Index, Cause: cause, Delta: delta, Life: p.Life})
		return false
	}

	return e.onGrid(r)
}

// onGrid reports whether any part of r lies on the playfield.
func (e *Engine) onGrid(r Rect) bool {
	return r.Right() >= 0 && r.Bottom() >= 0 &&
		r.X < e.Config.PlayfieldWidth() && r.Y < e.Config.PlayfieldHeight()
}
