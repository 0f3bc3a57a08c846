package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amalg/go-arena/internal/logger"
)

// GameState is everything a match mutates. The Engine owns it; frontends
// read it between Steps.
type GameState struct {
	Grid         *TileGrid
	Level        int // Index into the engine's levels
	LevelName    string
	Players      []*Player
	Bullets      []*Bullet
	EnemyBullets []*Bullet
	Bombs        []*Bomb
	PowerUps     []*PowerUp
	Enemies      []*Enemy
	Status       GameStatus
	Winner       int // Valid once Status is StatusMatchOver
}

// Engine runs the fixed-step simulation. It is not safe for concurrent use;
// a single goroutine calls Step.
type Engine struct {
	State  *GameState
	Config GameConfig

	// InputDisabled drops all input while keeping every other system running.
	InputDisabled bool

	levels     []*Level
	rng        *rand.Rand
	now        time.Duration
	ticks      int
	paused     bool
	matchTimer Timer
	schedule   powerUpSchedule
	events     []Event
	log        *logrus.Entry
}

// NewEngine creates a match on the first of levels. With no levels a
// procedural grid is generated for every round. A nil rng is seeded from
// config.Seed.
func NewEngine(config GameConfig, levels []*Level, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(config.Seed))
	}
	e := &Engine{
		Config: config,
		levels: levels,
		rng:    rng,
		log:    logger.Component("engine"),
	}

	spawns := SpawnPositions(config)
	e.State = &GameState{
		Players: []*Player{
			newPlayer(0, spawns[0], config, PlayerOneControls),
			newPlayer(1, spawns[1], config, PlayerTwoControls),
		},
		Status: StatusRunning,
		Winner: -1,
	}
	e.loadLevel(0)
	e.matchTimer.Start(e.now)
	return e
}

// SetControls rebinds a player's keys.
func (e *Engine) SetControls(player int, controls ControlBindings) {
	if player >= 0 && player < len(e.State.Players) {
		e.State.Players[player].Controls = controls
	}
}

// Now returns the simulated time since the engine was created.
func (e *Engine) Now() time.Duration {
	return e.now
}

// Ticks returns the number of Steps simulated.
func (e *Engine) Ticks() int {
	return e.ticks
}

// RemainingSeconds is the whole seconds left on the match clock.
func (e *Engine) RemainingSeconds() int {
	total := int(e.Config.MatchDuration / time.Second)
	return total - int(e.matchTimer.Elapsed(e.now)/time.Second)
}

// Paused reports whether the simulation is frozen.
func (e *Engine) Paused() bool {
	return e.paused
}

// Pause freezes the match. Step does nothing until Resume, so every gameplay
// timer stands still.
func (e *Engine) Pause() {
	if e.paused {
		return
	}
	e.paused = true
	e.matchTimer.Pause(e.now)
}

// Resume continues a paused match.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	e.matchTimer.Unpause(e.now)
}

// Step advances the simulation by one tick and returns what happened.
//
// Order within a tick: input and movement, slide reaction, enemy bullets,
// power-up schedule and enemies, player bullets, bombs, ability expiry,
// pickups, then round and match checks. Tile changes are visible to the next
// lookup in the same tick.
func (e *Engine) Step(in Input) []Event {
	if e.paused || e.State.Status != StatusRunning {
		return nil
	}
	e.now += e.Config.TickDuration()
	e.ticks++
	e.events = nil

	e.handleInput(in)
	e.tickEnemyBullets()
	e.tickPowerUpSchedule()
	e.tickEnemies()
	e.tickBullets()
	e.tickBombs()
	e.expireAbilities()
	e.collectPowerUps()
	e.checkRound()
	e.checkMatch()

	return e.events
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// loadLevel installs a fresh copy of level i, or a new procedural grid.
func (e *Engine) loadLevel(i int) {
	s := e.State
	if len(e.levels) == 0 {
		s.Level = 0
		s.LevelName = "generated"
		s.Grid = GenerateGrid(e.Config, e.rng)
		return
	}
	i %= len(e.levels)
	s.Level = i
	s.LevelName = e.levels[i].Name
	s.Grid = e.levels[i].Grid.Clone()
}

// Restart begins the next round: players return to their corners with full
// life, every projectile, bomb, power-up and enemy is removed and the next
// level is loaded. Scores and picked-up abilities are kept.
func (e *Engine) Restart() {
	s := e.State
	spawns := SpawnPositions(e.Config)
	for i, p := range s.Players {
		p.respawn(spawns[i%len(spawns)], e.Config)
	}
	s.Bullets = nil
	s.EnemyBullets = nil
	s.Bombs = nil
	if e.schedule.active {
		e.clearSet(false)
	}
	e.loadLevel(s.Level + 1)
	e.log.WithFields(logrus.Fields{"level": s.Level, "name": s.LevelName}).Info("round started")
}

// NewMatch resets scores, abilities and the match clock and starts over on
// the first level.
func (e *Engine) NewMatch() {
	s := e.State
	spawns := SpawnPositions(e.Config)
	for i, p := range s.Players {
		s.Players[i] = newPlayer(i, spawns[i%len(spawns)], e.Config, p.Controls)
	}
	s.Bullets = nil
	s.EnemyBullets = nil
	s.Bombs = nil
	s.PowerUps = nil
	s.Enemies = nil
	s.Status = StatusRunning
	s.Winner = -1
	e.schedule = powerUpSchedule{}
	e.paused = false
	e.matchTimer.Start(e.now)
	e.loadLevel(0)
}

// checkRound ends the round as soon as a player is out of life. The player
// with more life left takes the point.
func (e *Engine) checkRound() {
	down := false
	for _, p := range e.State.Players {
		if !p.Alive() {
			down = true
		}
	}
	if !down {
		return
	}

	winner := leader(e.State.Players, func(p *Player) int { return p.Life })
	if winner >= 0 {
		e.State.Players[winner].Score++
	}
	e.log.WithFields(logrus.Fields{"winner": winner, "level": e.State.Level}).Info("round over")
	e.emit(RoundOver{Winner: winner, Level: e.State.Level})
	e.Restart()
}

// checkMatch ends the match when the clock runs out. On equal scores the
// clock starts again with a fresh round.
func (e *Engine) checkMatch() {
	if e.RemainingSeconds() > 0 {
		return
	}

	s := e.State
	winner := leader(s.Players, func(p *Player) int { return p.Score })
	if winner < 0 {
		e.log.WithField("score", s.Players[0].Score).Info("match tied, playing on")
		e.emit(MatchTied{Score: s.Players[0].Score})
		e.Restart()
		e.schedule = powerUpSchedule{}
		e.matchTimer.Start(e.now)
		return
	}

	scores := make([]int, len(s.Players))
	for i, p := range s.Players {
		scores[i] = p.Score
	}
	s.Status = StatusMatchOver
	s.Winner = winner
	e.log.WithFields(logrus.Fields{"winner": winner, "scores": scores}).Info("match over")
	e.emit(MatchOver{Winner: winner, Scores: scores})
}

// leader returns the index of the player with the strictly highest value, or
// -1 on a tie.
func leader(players []*Player, value func(*Player) int) int {
	best, idx := 0, -1
	for i, p := range players {
		if v := value(p); idx < 0 || v > best {
			best, idx = v, i
		}
	}
	for i, p := range players {
		if i != idx && value(p) == best {
			return -1
		}
	}
	return idx
}
