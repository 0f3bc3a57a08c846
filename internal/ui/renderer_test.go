package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-arena/internal/game"
	"github.com/amalg/go-arena/internal/scoreboard"
)

func testEngine(mutate ...func(*game.GameConfig)) *game.Engine {
	config := game.DefaultConfig()
	config.TickRate = 10
	config.PowerUpSets = nil
	config.PowerUpThresholds = nil
	for _, fn := range mutate {
		fn(&config)
	}
	lvl := &game.Level{Name: "open", Grid: game.NewGrid(config.Cols, config.Rows, config.TileSize)}
	return game.NewEngine(config, []*game.Level{lvl}, nil)
}

func TestRenderBoardNil(t *testing.T) {
	assert.Equal(t, "Loading arena...", RenderBoard(nil, nil))
}

func TestRenderBoard(t *testing.T) {
	e := testEngine()
	s := e.State
	s.Grid.Set(3, 2, game.Brick)
	s.Grid.Set(4, 2, game.Steel)
	s.Grid.Set(5, 2, game.SlideUp)

	out := RenderBoard(s, nil)
	rows := strings.Split(out, "\n")
	require.Len(t, rows, s.Grid.Rows)
	for _, row := range rows {
		assert.Equal(t, 2*s.Grid.Cols, lipgloss.Width(row))
	}

	assert.Contains(t, rows[0], "P1")
	assert.Contains(t, rows[s.Grid.Rows-1], "P2")
	assert.Contains(t, rows[2], "▒▒")
	assert.Contains(t, rows[2], "██")
	assert.Contains(t, rows[2], "↑↑")
}

func TestRenderBoardLayers(t *testing.T) {
	e := testEngine()
	s := e.State
	p := s.Players[0]
	p.BombEnabled = true

	fire := map[game.Cell]int{{Col: 0, Row: 0}: 3, {Col: 10, Row: 10}: 1}
	s.Bombs = append(s.Bombs, &game.Bomb{Cell: game.Cell{Col: 6, Row: 6}})
	s.PowerUps = append(s.PowerUps, &game.PowerUp{Kind: game.PowerShield, Cell: game.Cell{Col: 8, Row: 8}})

	rows := strings.Split(RenderBoard(s, fire), "\n")
	assert.Contains(t, rows[0], "P1")
	assert.NotContains(t, rows[0], "░░", "players draw over fire")
	assert.Contains(t, rows[10], "░░")
	assert.Contains(t, rows[6], "()")
	assert.Contains(t, rows[8], "[]")
}

func TestRenderHUD(t *testing.T) {
	e := testEngine()
	e.State.Players[1].Score = 2
	e.State.Players[0].BulletUpgrade = true

	hud := RenderHUD(e)
	assert.Contains(t, hud, "Time: 60")
	assert.Contains(t, hud, "Level 1: open")
	assert.Contains(t, hud, "Player 1: 0")
	assert.Contains(t, hud, "Player 2: 2")
	assert.Contains(t, hud, "spread")
	assert.NotContains(t, hud, "PAUSED")

	e.Pause()
	assert.Contains(t, RenderHUD(e), "PAUSED")
}

func TestRenderScores(t *testing.T) {
	assert.Contains(t, RenderScores(nil, 5), "No high scores yet")

	board := &scoreboard.Board{}
	board.Add("ana", 4)
	out := RenderScores(board, 5)
	assert.Contains(t, out, "ANA")
	assert.Contains(t, out, "1.")
}
