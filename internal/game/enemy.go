package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Pattern is an enemy movement behavior.
type Pattern int

const (
	PatternLinear        Pattern = iota // Constant velocity, bouncing off the playfield edges
	PatternSearcher                     // Probes its bounding-box corners and turns along walls
	PatternStaticShooter                // Stands still and fires a rotating volley
	patternCount
)

func (p Pattern) String() string {
	switch p {
	case PatternLinear:
		return "linear"
	case PatternSearcher:
		return "searcher"
	case PatternStaticShooter:
		return "static-shooter"
	}
	return "invalid"
}

// volley maps an enemy's spin to the direction of its next bullet.
var volley = [directionCount]Direction{East, South, West, North}

// Enemy is a hazard spawned alongside each power-up.
type Enemy struct {
	ID       uuid.UUID
	X        int
	Y        int
	VX       int
	VY       int
	Size     int
	Pattern  Pattern
	Forward  bool // Searcher leads with +vx instead of -vx
	Spin     int  // Advances every tick; picks the volley direction
	Collider Circle

	// contacts holds the players currently touching the enemy. Damage is dealt
	// only on the tick a player enters the set.
	contacts mapset.Set[int]
}

// Rect returns the enemy's bounding box.
func (en *Enemy) Rect() Rect {
	return Rect{X: en.X, Y: en.Y, W: en.Size, H: en.Size}
}

func (en *Enemy) shiftColliders() {
	en.Collider.X = en.X + en.Collider.R
	en.Collider.Y = en.Y + en.Collider.R
}

// newEnemy places an enemy on cell with a random pattern and heading.
func (e *Engine) newEnemy(cell Cell) *Enemy {
	ts := e.State.Grid.TileSize
	size := e.Config.EnemySize
	en := &Enemy{
		ID:       uuid.New(),
		X:        cell.Col*ts + size/2,
		Y:        cell.Row*ts + size/2,
		Size:     size,
		Pattern:  Pattern(e.rng.Intn(int(patternCount))),
		Forward:  e.rng.Intn(2) == 1,
		Collider: Circle{R: size / 2},
		contacts: mapset.New[int](),
	}
	en.VX = e.rng.Intn(2) - 1
	en.VY = e.rng.Intn(2) - 1
	if en.VX == 0 || en.VY == 0 {
		en.VX, en.VY = 1, 1
	}
	en.shiftColliders()
	return en
}

// tickEnemies moves every enemy by its pattern and applies contact damage.
func (e *Engine) tickEnemies() {
	for _, en := range e.State.Enemies {
		switch en.Pattern {
		case PatternLinear:
			e.moveLinear(en)
		case PatternSearcher:
			e.moveSearcher(en)
		case PatternStaticShooter:
			if e.Config.EnemyFireEvery > 0 && e.ticks%e.Config.EnemyFireEvery == 0 {
				e.enemyShoot(en)
			}
		}
		en.Spin++
		e.touchPlayers(en)
	}
}

func (e *Engine) moveLinear(en *Enemy) {
	w, h := e.Config.PlayfieldWidth(), e.Config.PlayfieldHeight()
	en.X += en.VX
	if en.X < 0 || en.X+en.Size > w {
		en.VX = -en.VX
	}
	en.Y += en.VY
	if en.Y < 0 || en.Y+en.Size > h {
		en.VY = -en.VY
	}
	en.shiftColliders()
}

// moveSearcher walks the enemy round its own bounding box, one corner at a
// time. At each corner a blocking tile turns it onto the other axis.
func (e *Engine) moveSearcher(en *Enemy) {
	g := e.State.Grid
	blocked := func(x, y int) bool { return g.TileAt(x, y).Blocked() }
	s := en.Size

	if en.Forward {
		en.X += en.VX
	} else {
		en.X -= en.VX
	}
	if blocked(en.X+s, en.Y) {
		en.Y += en.VY
	} else {
		en.X += en.VX
	}
	if blocked(en.X+s, en.Y+s) {
		en.X -= en.VX
	} else {
		en.Y += en.VY
	}
	if blocked(en.X, en.Y+s) {
		en.Y -= en.VY
	} else {
		en.X -= en.VX
	}
	if blocked(en.X, en.Y) {
		en.X += en.VX
	} else {
		en.Y -= en.VY
	}

	if en.X == 0 || en.X+s == e.Config.PlayfieldWidth() {
		en.VX = -en.VX
	}
	if en.Y == 0 || en.Y+s == e.Config.PlayfieldHeight() {
		en.VY = -en.VY
	}
	en.shiftColliders()
}

// enemyShoot fires a phasing bullet from the enemy's center in the direction
// its spin currently points.
func (e *Engine) enemyShoot(en *Enemy) {
	dir := volley[en.Spin%len(volley)]
	b := e.newBullet(en.X+en.Size/2-1, en.Y+en.Size/2-1, dir, true)
	e.State.EnemyBullets = append(e.State.EnemyBullets, b)
}

// touchPlayers costs a life to every unshielded player that just made contact.
// The enemy bounces back on each new contact, shield or not.
func (e *Engine) touchPlayers(en *Enemy) {
	for _, p := range e.State.Players {
		if !CircleCircle(p.Collider, en.Collider) {
			en.contacts.Remove(p.Index)
			continue
		}
		if en.contacts.Has(p.Index) {
			continue
		}
		en.contacts.Put(p.Index)
		en.VX, en.VY = -en.VX, -en.VY
		if p.Shield {
			continue
		}
		p.Life--
		e.log.WithFields(logrus.Fields{"component": "enemy", "enemy": en.ID, "player": p.Index, "life": p.Life}).Debug("enemy contact")
		e.emit(PlayerHit{Player: p.Index, Cause: CauseEnemy, Delta: -1, Life: p.Life})
	}
}
