package game

import "github.com/google/uuid"

// Event is something that happened during a Step that the frontend may want
// to show. Concrete types are listed below; switch on them by type.
type Event interface {
	isEvent()
}

// Explosion is emitted when a bomb detonates.
type Explosion struct {
	BombID    uuid.UUID
	Cell      Cell
	Cells     []Cell // On-grid cells covered by the blast, center first
	Destroyed []Cell // Bricks turned into grass
	Victims   []int  // Player indices that lost a life
}

// HitCause tells what changed a player's life.
type HitCause int

const (
	CauseBullet HitCause = iota
	CauseEnemyBullet
	CauseBomb
	CauseEnemy
)

// PlayerHit is emitted whenever a player's life changes in combat. Delta is
// +1 when a shield turned a bullet into a heal.
type PlayerHit struct {
	Player int
	Cause  HitCause
	Delta  int
	Life   int
}

// PowerUpCollected is emitted when a player picks up a power-up.
type PowerUpCollected struct {
	ID     uuid.UUID
	Kind   PowerUpKind
	Player int
}

// AbilityExpired is emitted when a timed power-up runs out.
type AbilityExpired struct {
	Kind   PowerUpKind
	Player int
}

// PowerUpSetSpawned is emitted when a scheduled batch appears.
type PowerUpSetSpawned struct {
	Set      int
	PowerUps int
}

// PowerUpSetCleared is emitted when a batch despawns.
type PowerUpSetCleared struct {
	Set       int
	Collected bool // Every power-up was picked up before the display timer ran out
}

// RoundOver is emitted when a player is eliminated. Winner is -1 when both
// players went down with equal life.
type RoundOver struct {
	Winner int
	Level  int // Level that was just played
}

// MatchOver is emitted when the match clock runs out with a clear winner.
type MatchOver struct {
	Winner int
	Scores []int
}

// MatchTied is emitted when the clock runs out on equal scores; the match
// clock restarts.
type MatchTied struct {
	Score int
}

func (Explosion) isEvent()         {}
func (PlayerHit) isEvent()         {}
func (PowerUpCollected) isEvent()  {}
func (AbilityExpired) isEvent()    {}
func (PowerUpSetSpawned) isEvent() {}
func (PowerUpSetCleared) isEvent() {}
func (RoundOver) isEvent()         {}
func (MatchOver) isEvent()         {}
func (MatchTied) isEvent()         {}
