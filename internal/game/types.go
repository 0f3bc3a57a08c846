package game

import (
	"time"
)

// TileType is the kind of a grid cell. The numeric values are the indices
// used by the level-description format.
type TileType int

const (
	Grass TileType = iota
	Brick          // Destructible by bullets and bombs
	Water          // Blocks players, not bullets
	Steel          // Indestructible, also the out-of-bounds sentinel
	SlideDown
	SlideLeft
	SlideUp
	SlideRight
	tileTypeCount
)

var tileNames = [tileTypeCount]string{"grass", "brick", "water", "steel", "slide-down", "slide-left", "slide-up", "slide-right"}

func (t TileType) String() string {
	if t < 0 || t >= tileTypeCount {
		return "invalid"
	}
	return tileNames[t]
}

// Valid reports whether t is inside the tile catalog.
func (t TileType) Valid() bool {
	return t >= 0 && t < tileTypeCount
}

// IsSlide reports whether t imparts forced movement.
func (t TileType) IsSlide() bool {
	return t >= SlideDown && t <= SlideRight
}

// Direction is a cardinal direction. The order matches the rotation used by
// bullets: d+1 quarter turns from the +x axis.
type Direction int

const (
	South Direction = iota
	West
	North
	East
	directionCount
)

var directionNames = [directionCount]string{"south", "west", "north", "east"}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return "invalid"
	}
	return directionNames[d]
}

// Next returns the direction a quarter turn further, wrapping around.
func (d Direction) Next() Direction {
	return (d + 1) % directionCount
}

// Delta returns the unit step for d in screen coordinates (+y is down).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case South:
		return 0, 1
	case West:
		return -1, 0
	case North:
		return 0, -1
	case East:
		return 1, 0
	}
	return 0, 0
}

// Tile is an immutable catalog entry describing how a tile type behaves.
type Tile struct {
	Type        TileType
	Walkability int       // 0 walkable, anything higher blocks
	Facing      Direction // Only meaningful for slide tiles
}

// Blocked reports whether the tile obstructs player movement.
func (t Tile) Blocked() bool {
	return t.Walkability > 0
}

// catalog is the fixed tile table, indexed by TileType.
var catalog = [tileTypeCount]Tile{
	Grass:      {Type: Grass, Walkability: 0},
	Brick:      {Type: Brick, Walkability: 2},
	Water:      {Type: Water, Walkability: 1},
	Steel:      {Type: Steel, Walkability: 3},
	SlideDown:  {Type: SlideDown, Facing: South},
	SlideLeft:  {Type: SlideLeft, Facing: West},
	SlideUp:    {Type: SlideUp, Facing: North},
	SlideRight: {Type: SlideRight, Facing: East},
}

// TileOf returns the catalog entry for t. Invalid types resolve to Steel.
func TileOf(t TileType) Tile {
	if !t.Valid() {
		return catalog[Steel]
	}
	return catalog[t]
}

// Rect is an integer axis-aligned box in playfield pixels.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Circle is a collider in playfield pixels.
type Circle struct {
	X int
	Y int
	R int
}

// Cell addresses a grid cell by column and row.
type Cell struct {
	Col int
	Row int
}

// PowerUpKind identifies a power-up effect. The values index the columns of
// GameConfig.PowerUpSets.
type PowerUpKind int

const (
	PowerLife PowerUpKind = iota
	PowerBomb
	PowerShield
	PowerBulletUpgrade
	PowerSpeedUp
	powerUpKindCount
)

// NumPowerUpKinds is the number of power-up kinds.
const NumPowerUpKinds = int(powerUpKindCount)

var powerUpNames = [powerUpKindCount]string{"life", "bomb", "shield", "bullet-upgrade", "speed-up"}

func (k PowerUpKind) String() string {
	if k < 0 || k >= powerUpKindCount {
		return "invalid"
	}
	return powerUpNames[k]
}

// BlastMode selects how a bomb ray treats obstructions.
type BlastMode int

const (
	// BlastSkipThrough rewrites every brick along the ray, ignoring anything in between.
	BlastSkipThrough BlastMode = iota
	// BlastClampToObstruction stops each ray at the first blocking tile.
	BlastClampToObstruction
)

// GameStatus is the current phase of the match.
type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusMatchOver
)

func (s GameStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusMatchOver:
		return "match-over"
	}
	return "invalid"
}

// GameConfig holds the tunables of a match. All sizes are playfield pixels.
type GameConfig struct {
	TileSize int
	Cols     int
	Rows     int
	TickRate int // Ticks per second

	MatchDuration time.Duration
	Seed          int64

	PlayerSize  int
	PlayerSpeed int
	SpawnInset  int // Distance of the spawn corners from the edges
	StartLife   int
	MaxLife     int // Cap for the life power-up

	BulletSize  int
	BulletSpeed float64

	BombSize  int
	BombFuse  time.Duration
	BombScope int
	BlastMode BlastMode

	ShieldDuration      time.Duration
	BombAbilityDuration time.Duration

	PowerUpSize       int
	PowerUpDisplay    time.Duration
	PowerUpSets       [][NumPowerUpKinds]int
	PowerUpThresholds []int // Remaining match seconds
	SpawnMargin       int   // Cells kept free of spawns along the border

	EnemySize      int
	EnemyFireEvery int // Ticks between static shooter volleys
}

// DefaultConfig returns the classic two-player arena.
func DefaultConfig() GameConfig {
	return GameConfig{
		TileSize: 30,
		Cols:     39,
		Rows:     18,
		TickRate: 60,

		MatchDuration: 60 * time.Second,

		PlayerSize:  20,
		PlayerSpeed: 2,
		SpawnInset:  5,
		StartLife:   5,
		MaxLife:     8,

		BulletSize:  5,
		BulletSpeed: 5,

		BombSize:  20,
		BombFuse:  3 * time.Second,
		BombScope: 1,
		BlastMode: BlastSkipThrough,

		ShieldDuration:      10 * time.Second,
		BombAbilityDuration: 50 * time.Second,

		PowerUpSize:    20,
		PowerUpDisplay: 10 * time.Second,
		// Life, Bomb, Shield, BulletUpgrade, SpeedUp
		PowerUpSets: [][NumPowerUpKinds]int{
			{0, 2, 0, 1, 2},
			{0, 2, 0, 0, 1},
			{2, 0, 1, 0, 1},
			{1, 0, 2, 0, 2},
			{0, 0, 0, 2, 2},
			{1, 3, 0, 1, 1},
			{0, 0, 1, 1, 2},
			{3, 0, 0, 1, 2},
		},
		PowerUpThresholds: []int{110, 95, 80, 70, 45, 30, 15, 7},
		SpawnMargin:       4,

		EnemySize:      16,
		EnemyFireEvery: 10,
	}
}

// PlayfieldWidth is the grid width in pixels.
func (c GameConfig) PlayfieldWidth() int { return c.Cols * c.TileSize }

// PlayfieldHeight is the grid height in pixels.
func (c GameConfig) PlayfieldHeight() int { return c.Rows * c.TileSize }

// TickDuration is the simulated time covered by one Step.
func (c GameConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// SpawnPositions returns the top-left pixel of each player's spawn corner:
// player one top-left, player two bottom-right.
func SpawnPositions(c GameConfig) []Rect {
	return []Rect{
		{X: c.SpawnInset, Y: c.SpawnInset, W: c.PlayerSize, H: c.PlayerSize},
		{
			X: c.PlayfieldWidth() - c.PlayerSize - c.SpawnInset,
			Y: c.PlayfieldHeight() - c.PlayerSize - c.SpawnInset,
			W: c.PlayerSize,
			H: c.PlayerSize,
		},
	}
}
