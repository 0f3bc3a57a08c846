package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-arena/internal/game"
	"github.com/amalg/go-arena/internal/scoreboard"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newTestModel(e *game.Engine, path string) Model {
	return NewModel(Options{
		Engine:    e,
		ScorePath: path,
		Clock:     func() time.Time { return t0 },
	})
}

func TestModelTitleScreen(t *testing.T) {
	e := testEngine()
	m := newTestModel(e, "")

	assert.Contains(t, m.View(), "TILE ARENA")
	m = update(t, m, tickMsg(at(100)))
	assert.Zero(t, e.Ticks(), "no simulation before the match starts")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenPlaying, m.screen)
	m = update(t, m, tickMsg(at(200)))
	assert.Equal(t, 1, e.Ticks())
}

func TestModelInitTicks(t *testing.T) {
	m := newTestModel(testEngine(), "")
	assert.NotNil(t, m.Init())
}

func TestModelMovesHeldKeys(t *testing.T) {
	e := testEngine()
	m := newTestModel(e, "")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("d"))

	m = update(t, m, tickMsg(at(100)), tickMsg(at(200)))
	assert.Equal(t, 9, e.State.Players[0].Rect.X)
	assert.Equal(t, game.East, e.State.Players[0].Facing)

	// Released once the hold window runs out
	update(t, m, tickMsg(at(900)))
	assert.Equal(t, 9, e.State.Players[0].Rect.X)
}

func TestModelShootsOncePerPress(t *testing.T) {
	e := testEngine()
	m := newTestModel(e, "")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("c"), runes("c"))

	m = update(t, m, tickMsg(at(100)))
	assert.Len(t, e.State.Bullets, 1)
	update(t, m, tickMsg(at(200)))
	assert.Len(t, e.State.Bullets, 1)
}

func TestModelHeldShootFiresOnce(t *testing.T) {
	now := t0
	m := NewModel(Options{
		Engine: testEngine(),
		Clock:  func() time.Time { return now },
	})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("c"))
	assert.Equal(t, []string{"c"}, m.pressed)

	m = update(t, m, tickMsg(at(100)))
	for _, ms := range []int{400, 430, 460} {
		now = at(ms)
		m = update(t, m, runes("c"))
	}
	assert.Empty(t, m.pressed, "auto-repeat of a held key is not a new press")
}

func TestModelPause(t *testing.T) {
	e := testEngine()
	m := newTestModel(e, "")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("p"))

	require.True(t, e.Paused())
	m = update(t, m, tickMsg(at(100)), tickMsg(at(200)))
	assert.Zero(t, e.Ticks())
	assert.Contains(t, m.View(), "PAUSED")

	m = update(t, m, runes("p"), tickMsg(at(300)))
	assert.False(t, e.Paused())
	assert.Equal(t, 1, e.Ticks())
}

func TestModelExplosionFlash(t *testing.T) {
	e := testEngine()
	m := newTestModel(e, "")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	e.State.Players[0].BombEnabled = true
	m = update(t, m, runes("x"))
	for i := 0; i < 32; i++ {
		m = update(t, m, tickMsg(at(100*(i+1))))
	}
	assert.Empty(t, e.State.Bombs)
	assert.NotEmpty(t, m.fire)

	for i := 0; i < fireTicks; i++ {
		m = update(t, m, tickMsg(at(4000+100*i)))
	}
	assert.Empty(t, m.fire)
}

func TestModelGameOverRecordsWinner(t *testing.T) {
	path := filepath.Join(t.TempDir(), scoreboard.DefaultPath)
	e := testEngine(func(c *game.GameConfig) { c.MatchDuration = time.Second })
	e.State.Players[1].Score = 2
	m := newTestModel(e, path)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 10; i++ {
		m = update(t, m, tickMsg(at(100*(i+1))))
	}
	require.Equal(t, screenGameOver, m.screen)
	assert.Contains(t, m.View(), "PLAYER 2 WINS 2 TO 0")

	m = update(t, m, runes("an"), runes("x"), tea.KeyMsg{Type: tea.KeyBackspace}, runes("a,"))
	assert.Equal(t, "ana", string(m.name))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.saved)
	assert.Contains(t, m.View(), "ANA")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ANA,2\n", string(data))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenPlaying, m.screen)
	assert.Equal(t, game.StatusRunning, e.State.Status)
	assert.Zero(t, e.State.Players[1].Score)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(testEngine(), "")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, "Goodbye!\n", next.View())
}
