package game

import (
	"github.com/zyedidia/generic/mapset"
)

// Control is a player action.
type Control int

const (
	ControlUp Control = iota
	ControlLeft
	ControlDown
	ControlRight
	ControlShoot
	ControlPlaceBomb
)

// ControlBindings maps a player's actions to key names.
type ControlBindings struct {
	Up        string
	Left      string
	Down      string
	Right     string
	Shoot     string
	PlaceBomb string
}

// Default control schemes for the two seats.
var (
	PlayerOneControls = ControlBindings{Up: "w", Left: "a", Down: "s", Right: "d", Shoot: "c", PlaceBomb: "x"}
	PlayerTwoControls = ControlBindings{Up: "i", Left: "j", Down: "k", Right: "l", Shoot: "n", PlaceBomb: "m"}
)

// Lookup returns the control bound to key.
func (b ControlBindings) Lookup(key string) (Control, bool) {
	switch key {
	case "":
		return 0, false
	case b.Up:
		return ControlUp, true
	case b.Left:
		return ControlLeft, true
	case b.Down:
		return ControlDown, true
	case b.Right:
		return ControlRight, true
	case b.Shoot:
		return ControlShoot, true
	case b.PlaceBomb:
		return ControlPlaceBomb, true
	}
	return 0, false
}

// Movement returns the four movement keys in the order they are applied.
func (b ControlBindings) Movement() [4]string {
	return [4]string{b.Up, b.Left, b.Down, b.Right}
}

// Input is the per-tick input snapshot. Held keys move players every tick
// they are down, Pressed keys fire once.
type Input struct {
	Held    mapset.Set[string]
	Pressed []string
}

// NewInput returns an empty input snapshot.
func NewInput() Input {
	return Input{Held: mapset.New[string]()}
}

// Player is one of the two combatants.
type Player struct {
	Index    int
	Rect     Rect
	Collider Circle
	Facing   Direction
	Controls ControlBindings

	Life  int
	Score int
	Speed int

	Shield        bool
	ShieldTimer   Timer
	BombEnabled   bool
	BombTimer     Timer
	BulletUpgrade bool

	sliding   bool
	lastSlide Rect
}

func newPlayer(index int, spawn Rect, config GameConfig, controls ControlBindings) *Player {
	p := &Player{
		Index:    index,
		Rect:     spawn,
		Collider: Circle{R: config.PlayerSize / 2},
		Facing:   South,
		Controls: controls,
		Life:     config.StartLife,
		Speed:    config.PlayerSpeed,
	}
	p.ShiftColliders()
	return p
}

// ShiftColliders re-centers the collider on the rectangle. It must follow
// every change to Rect.
func (p *Player) ShiftColliders() {
	p.Collider.X = p.Rect.X + p.Collider.R
	p.Collider.Y = p.Rect.Y + p.Collider.R
}

// Alive reports whether the player has life left.
func (p *Player) Alive() bool {
	return p.Life > 0
}

// Sliding reports whether the player is being carried by a slide tile.
func (p *Player) Sliding() bool {
	return p.sliding
}

// respawn puts the player back on its corner for a new round.
func (p *Player) respawn(spawn Rect, config GameConfig) {
	p.Rect = spawn
	p.ShiftColliders()
	p.Life = config.StartLife
	p.Facing = South
	p.sliding = false
	p.lastSlide = Rect{}
}
