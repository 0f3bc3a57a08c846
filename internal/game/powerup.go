package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PowerUp is a collectible lying on a grass cell.
type PowerUp struct {
	ID       uuid.UUID
	Kind     PowerUpKind
	Cell     Cell
	Rect     Rect
	Collider Circle
}

// powerUpSchedule tracks which batch is next and whether one is on the field.
type powerUpSchedule struct {
	set     int // Next set to spawn, or the one currently shown
	active  bool
	display Timer
}

// ActiveSet returns the index of the power-up set on the field, or -1.
func (e *Engine) ActiveSet() int {
	if !e.schedule.active {
		return -1
	}
	return e.schedule.set
}

// tickPowerUpSchedule spawns the next set once the match clock drops below
// its threshold, and clears the shown set when its display time is up or
// nothing is left to collect.
func (e *Engine) tickPowerUpSchedule() {
	sched := &e.schedule
	cfg := e.Config

	if !sched.active {
		if sched.set >= len(cfg.PowerUpSets) || sched.set >= len(cfg.PowerUpThresholds) {
			return
		}
		if e.RemainingSeconds() < cfg.PowerUpThresholds[sched.set] {
			e.spawnSet(sched.set)
		}
		return
	}

	if len(e.State.PowerUps) == 0 {
		e.clearSet(true)
		return
	}
	if sched.display.Elapsed(e.now) > cfg.PowerUpDisplay {
		e.clearSet(false)
	}
}

// spawnSet places every power-up of set i on random grass cells, with one
// enemy alongside each.
func (e *Engine) spawnSet(i int) {
	s := e.State
	sites := s.Grid.GrassCells(e.Config.SpawnMargin)

	n := 0
	if len(sites) > 0 {
		for kind, count := range e.Config.PowerUpSets[i] {
			for j := 0; j < count; j++ {
				s.PowerUps = append(s.PowerUps, e.newPowerUp(PowerUpKind(kind), sites[e.rng.Intn(len(sites))]))
				s.Enemies = append(s.Enemies, e.newEnemy(sites[e.rng.Intn(len(sites))]))
				n++
			}
		}
	}

	e.schedule.active = true
	e.schedule.display.Start(e.now)
	e.log.WithFields(logrus.Fields{"component": "powerup", "set": i, "count": n}).Info("power-up set spawned")
	e.emit(PowerUpSetSpawned{Set: i, PowerUps: n})
}

// clearSet removes the shown power-ups and their enemies and arms the next set.
func (e *Engine) clearSet(collected bool) {
	s := e.State
	set := e.schedule.set
	s.PowerUps = nil
	s.Enemies = nil
	e.schedule.display.Stop()
	e.schedule.active = false
	e.schedule.set++
	e.log.WithFields(logrus.Fields{"component": "powerup", "set": set, "collected": collected}).Info("power-up set cleared")
	e.emit(PowerUpSetCleared{Set: set, Collected: collected})
}

func (e *Engine) newPowerUp(kind PowerUpKind, cell Cell) *PowerUp {
	ts := e.State.Grid.TileSize
	size := e.Config.PowerUpSize
	x := cell.Col*ts + ts/5
	y := cell.Row*ts + ts/5
	return &PowerUp{
		ID:       uuid.New(),
		Kind:     kind,
		Cell:     cell,
		Rect:     Rect{X: x, Y: y, W: size, H: size},
		Collider: Circle{X: x + size/2, Y: y + size/2, R: size / 2},
	}
}

// collectPowerUps hands each power-up to the first player touching it. A
// collected power-up leaves the field in the same pass, so it can only be
// taken once.
func (e *Engine) collectPowerUps() {
	s := e.State
	if len(s.PowerUps) == 0 {
		return
	}
	remaining := make([]*PowerUp, 0, len(s.PowerUps))
	for _, pu := range s.PowerUps {
		taken := false
		for _, p := range s.Players {
			if CircleCircle(p.Collider, pu.Collider) {
				e.applyPowerUp(p, pu.Kind)
				e.log.WithFields(logrus.Fields{
					"component": "powerup",
					"powerup":   pu.ID,
					"kind":      pu.Kind,
					"player":    p.Index,
				}).Info("power-up collected")
				e.emit(PowerUpCollected{ID: pu.ID, Kind: pu.Kind, Player: p.Index})
				taken = true
				break
			}
		}
		if !taken {
			remaining = append(remaining, pu)
		}
	}
	s.PowerUps = remaining
}

// applyPowerUp grants kind to p.
func (e *Engine) applyPowerUp(p *Player, kind PowerUpKind) {
	switch kind {
	case PowerLife:
		if p.Life < e.Config.MaxLife {
			p.Life++
		}
	case PowerBomb:
		p.BombEnabled = true
		p.BombTimer.Start(e.now)
	case PowerShield:
		p.Shield = true
		p.ShieldTimer.Start(e.now)
	case PowerBulletUpgrade:
		p.BulletUpgrade = true
	case PowerSpeedUp:
		p.Speed++
	}
}

// expireAbilities revokes timed abilities that outlived their duration.
func (e *Engine) expireAbilities() {
	for _, p := range e.State.Players {
		if p.Shield && p.ShieldTimer.Elapsed(e.now) > e.Config.ShieldDuration {
			p.Shield = false
			p.ShieldTimer.Stop()
			e.emit(AbilityExpired{Kind: PowerShield, Player: p.Index})
		}
		if p.BombEnabled && p.BombTimer.Elapsed(e.now) > e.Config.BombAbilityDuration {
			p.BombEnabled = false
			p.BombTimer.Stop()
			e.emit(AbilityExpired{Kind: PowerBomb, Player: p.Index})
		}
	}
}
