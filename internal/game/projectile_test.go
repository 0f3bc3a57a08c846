package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoot(t *testing.T) {
	tests := []struct {
		facing Direction
		x, y   int
	}{
		{East, 220, 210},
		{West, 195, 210},
		{South, 210, 220},
		{North, 210, 195},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			e := newTestEngine(t, testConfig())
			p := e.State.Players[0]
			place(p, 200, 200)
			p.Facing = tt.facing

			e.shoot(p)
			require.Len(t, e.State.Bullets, 1)
			b := e.State.Bullets[0]
			assert.Equal(t, tt.facing, b.Dir)
			assert.Equal(t, float64(tt.x), b.X)
			assert.Equal(t, float64(tt.y), b.Y)
			assert.Equal(t, 5, b.Size)
			assert.False(t, b.Phasing)
		})
	}
}

func TestShootUpgradeSpreads(t *testing.T) {
	e := newTestEngine(t, testConfig())
	p := e.State.Players[0]
	place(p, 200, 200)
	p.BulletUpgrade = true

	e.shoot(p)
	require.Len(t, e.State.Bullets, 4)
	var dirs []Direction
	for _, b := range e.State.Bullets {
		dirs = append(dirs, b.Dir)
	}
	assert.ElementsMatch(t, []Direction{East, West, South, North}, dirs)
}

func TestShootOnPress(t *testing.T) {
	e := newTestEngine(t, testConfig())

	e.Step(pressed("c"))
	require.Len(t, e.State.Bullets, 1)
	b := e.State.Bullets[0]
	assert.Equal(t, South, b.Dir)
	assert.Equal(t, 15.0, b.X)
	assert.Equal(t, 30.0, b.Y, "moved once in the tick it was fired")
	assert.Equal(t, 5, e.State.Players[0].Life, "does not hit its shooter")

	e.State.Players[1].Facing = North
	e.Step(pressed("n"))
	assert.Len(t, e.State.Bullets, 2)
}

func TestBulletDestroysBrick(t *testing.T) {
	e := newTestEngine(t, testConfig())
	g := e.State.Grid
	g.Set(5, 5, Brick)
	e.State.Bullets = []*Bullet{e.newBullet(140, 160, East, false)}

	e.Step(NewInput())
	assert.Equal(t, Grass, g.TypeAt(5, 5))
	assert.Empty(t, e.State.Bullets, "the brick absorbs the bullet")
}

func TestBulletTrailingCornerDestroysBrick(t *testing.T) {
	e := newTestEngine(t, testConfig())
	g := e.State.Grid
	g.Set(5, 6, Brick)
	// Leading corner stays on row 5, the trailing corner dips into row 6
	e.State.Bullets = []*Bullet{e.newBullet(140, 176, East, false)}

	e.Step(NewInput())
	assert.Equal(t, Grass, g.TypeAt(5, 6))
	assert.Empty(t, e.State.Bullets)
}

func TestBulletStoppedBySteel(t *testing.T) {
	e := newTestEngine(t, testConfig())
	g := e.State.Grid
	g.Set(5, 5, Steel)
	e.State.Bullets = []*Bullet{e.newBullet(140, 160, East, false)}

	e.Step(NewInput())
	require.Len(t, e.State.Bullets, 1)
	e.Step(NewInput())
	assert.Empty(t, e.State.Bullets)
	assert.Equal(t, Steel, g.TypeAt(5, 5))
}

func TestBulletCrossesWater(t *testing.T) {
	e := newTestEngine(t, testConfig())
	e.State.Grid.Set(5, 5, Water)
	e.State.Bullets = []*Bullet{e.newBullet(140, 160, East, false)}

	for i := 0; i < 10; i++ {
		e.Step(NewInput())
	}
	require.Len(t, e.State.Bullets, 1)
	assert.Equal(t, 190.0, e.State.Bullets[0].X)
	assert.Equal(t, Water, e.State.Grid.TypeAt(5, 5))
}

func TestBulletLeavesGrid(t *testing.T) {
	e := newTestEngine(t, testConfig())
	e.State.Bullets = []*Bullet{e.newBullet(1166, 300, East, false)}

	e.Step(NewInput())
	assert.Empty(t, e.State.Bullets)
}

func TestBulletHitsPlayer(t *testing.T) {
	e := newTestEngine(t, testConfig())
	p := e.State.Players[0]
	e.State.Bullets = []*Bullet{e.newBullet(22, 12, West, false)}

	events := e.Step(NewInput())
	assert.Equal(t, 4, p.Life)
	assert.Empty(t, e.State.Bullets)

	hits := eventsOf[PlayerHit](events)
	require.Len(t, hits, 1)
	assert.Equal(t, PlayerHit{Player: 0, Cause: CauseBullet, Delta: -1, Life: 4}, hits[0])
}

func TestShieldTurnsBulletIntoHeal(t *testing.T) {
	e := newTestEngine(t, testConfig())
	p := e.State.Players[0]
	p.Shield = true
	p.ShieldTimer.Start(e.Now())
	p.Life = e.Config.MaxLife
	e.State.Bullets = []*Bullet{e.newBullet(22, 12, West, false)}

	hits := eventsOf[PlayerHit](e.Step(NewInput()))
	assert.Equal(t, e.Config.MaxLife+1, p.Life, "the shield heal is not capped")
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].Delta)
}

func TestBulletRectFloors(t *testing.T) {
	b := &Bullet{X: 10.7, Y: -0.2, Size: 5}
	assert.Equal(t, Rect{X: 10, Y: -1, W: 5, H: 5}, b.Rect())
}
