package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-arena/internal/game"
	"github.com/amalg/go-arena/internal/scoreboard"
)

// Color palette
var (
	// Tile styles
	grassStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1f3a1f")).
			Foreground(lipgloss.Color("#1f3a1f"))

	brickStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B4513")).
			Foreground(lipgloss.Color("#A0522D"))

	waterStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a3a6e")).
			Foreground(lipgloss.Color("#4a7ac0"))

	steelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#7a7a7a"))

	slideStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2a4a4a")).
			Foreground(lipgloss.Color("#88dddd"))

	bombStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1f3a1f")).
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	fireStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff6600")).
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true)

	bulletStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1f3a1f")).
			Foreground(lipgloss.Color("#ffffaa"))

	enemyBulletStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#1f3a1f")).
				Foreground(lipgloss.Color("#ff77ff"))

	enemyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1f3a1f")).
			Foreground(lipgloss.Color("#ff44ff")).
			Bold(true)

	powerUpStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ffff44")).
			Foreground(lipgloss.Color("#222222")).
			Bold(true)

	// Player colors, one per seat
	playerColors = []lipgloss.Color{
		lipgloss.Color("#00ff88"), // Green
		lipgloss.Color("#4488ff"), // Blue
	}

	shieldColor = lipgloss.Color("#ffffff")

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true).
			Blink(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

var tileGlyphs = map[game.TileType]string{
	game.Brick:      "▒▒",
	game.Water:      "≈≈",
	game.Steel:      "██",
	game.SlideDown:  "↓↓",
	game.SlideLeft:  "←←",
	game.SlideUp:    "↑↑",
	game.SlideRight: "→→",
}

var powerUpGlyphs = [game.NumPowerUpKinds]string{"♥♥", "B!", "[]", "**", ">>"}

// layers maps cells to what is drawn on them, one lookup per entity kind.
type layers struct {
	players      map[game.Cell]*game.Player
	bullets      map[game.Cell]bool
	enemyBullets map[game.Cell]bool
	fire         map[game.Cell]int
	enemies      map[game.Cell]bool
	bombs        map[game.Cell]bool
	powerUps     map[game.Cell]game.PowerUpKind
}

func buildLayers(state *game.GameState, fire map[game.Cell]int) layers {
	g := state.Grid
	l := layers{
		players:      make(map[game.Cell]*game.Player),
		bullets:      make(map[game.Cell]bool),
		enemyBullets: make(map[game.Cell]bool),
		fire:         fire,
		enemies:      make(map[game.Cell]bool),
		bombs:        make(map[game.Cell]bool),
		powerUps:     make(map[game.Cell]game.PowerUpKind),
	}
	for _, p := range state.Players {
		l.players[g.CellOf(p.Collider.X, p.Collider.Y)] = p
	}
	for _, b := range state.Bullets {
		r := b.Rect()
		l.bullets[g.CellOf(r.X+r.W/2, r.Y+r.H/2)] = true
	}
	for _, b := range state.EnemyBullets {
		r := b.Rect()
		l.enemyBullets[g.CellOf(r.X+r.W/2, r.Y+r.H/2)] = true
	}
	for _, en := range state.Enemies {
		l.enemies[g.CellOf(en.Collider.X, en.Collider.Y)] = true
	}
	for _, b := range state.Bombs {
		l.bombs[b.Cell] = true
	}
	for _, pu := range state.PowerUps {
		l.powerUps[pu.Cell] = pu.Kind
	}
	return l
}

// RenderBoard draws the playfield, one terminal row per grid row and two
// characters per cell. fire holds the cells of recent explosions.
func RenderBoard(state *game.GameState, fire map[game.Cell]int) string {
	if state == nil || state.Grid == nil {
		return "Loading arena..."
	}

	g := state.Grid
	l := buildLayers(state, fire)

	rows := make([]string, 0, g.Rows)
	for row := 0; row < g.Rows; row++ {
		var sb strings.Builder
		for col := 0; col < g.Cols; col++ {
			sb.WriteString(renderCell(g, game.Cell{Col: col, Row: row}, l))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderCell renders a single cell.
// Priority: Player > Bullet > Fire > Enemy > Bomb > PowerUp > Tile
func renderCell(g *game.TileGrid, c game.Cell, l layers) string {
	if p, ok := l.players[c]; ok {
		color := playerColors[p.Index%len(playerColors)]
		style := lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("#000000")).Bold(true)
		if p.Shield {
			style = style.Background(shieldColor)
		}
		return style.Render(fmt.Sprintf("P%d", p.Index+1))
	}

	switch {
	case l.bullets[c]:
		return bulletStyle.Render("••")
	case l.enemyBullets[c]:
		return enemyBulletStyle.Render("··")
	case l.fire[c] > 0:
		return fireStyle.Render("░░")
	case l.enemies[c]:
		return enemyStyle.Render("@@")
	case l.bombs[c]:
		return bombStyle.Render("()")
	}
	if kind, ok := l.powerUps[c]; ok {
		return powerUpStyle.Render(powerUpGlyphs[kind])
	}

	tile := g.TypeAt(c.Col, c.Row)
	glyph, ok := tileGlyphs[tile]
	switch {
	case !ok:
		return grassStyle.Render("  ")
	case tile == game.Brick:
		return brickStyle.Render(glyph)
	case tile == game.Water:
		return waterStyle.Render(glyph)
	case tile == game.Steel:
		return steelStyle.Render(glyph)
	default:
		return slideStyle.Render(glyph)
	}
}

// RenderHUD renders the bar above the playfield: clock, level and each
// player's life, score and active abilities.
func RenderHUD(e *game.Engine) string {
	if e == nil {
		return ""
	}
	s := e.State

	clock := titleStyle.Render(fmt.Sprintf("Time: %d", max(e.RemainingSeconds(), 0)))
	level := dimStyle.Render(fmt.Sprintf("Level %d: %s", s.Level+1, s.LevelName))
	top := lipgloss.JoinHorizontal(lipgloss.Top, clock, "   ", level)
	if e.Paused() {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, "   ", pausedStyle.Render("PAUSED"))
	}

	cols := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		cols = append(cols, renderPlayerInfo(e, p))
	}

	parts := []string{
		top,
		lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(cols, "    ")),
	}
	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}

func renderPlayerInfo(e *game.Engine, p *game.Player) string {
	name := lipgloss.NewStyle().
		Foreground(playerColors[p.Index%len(playerColors)]).
		Bold(true).
		Render(fmt.Sprintf("Player %d: %d", p.Index+1, p.Score))

	line := fmt.Sprintf("%s  ♥×%d", name, max(p.Life, 0))
	if p.Shield {
		line += fmt.Sprintf("  shield %s", remaining(e.Config.ShieldDuration-p.ShieldTimer.Elapsed(e.Now())))
	}
	if p.BombEnabled {
		line += fmt.Sprintf("  bomb %s", remaining(e.Config.BombAbilityDuration-p.BombTimer.Elapsed(e.Now())))
	}
	if p.BulletUpgrade {
		line += "  spread"
	}
	if p.Speed > e.Config.PlayerSpeed {
		line += fmt.Sprintf("  speed+%d", p.Speed-e.Config.PlayerSpeed)
	}
	return line
}

func remaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%ds", int(d.Round(time.Second)/time.Second))
}

// RenderControls renders the key reference for both seats.
func RenderControls(players []*game.Player) string {
	lines := make([]string, 0, len(players)+1)
	for _, p := range players {
		c := p.Controls
		lines = append(lines, fmt.Sprintf("Player %d: %s%s%s%s move, %s shoot, %s bomb",
			p.Index+1, strings.ToUpper(c.Up), strings.ToUpper(c.Left), strings.ToUpper(c.Down),
			strings.ToUpper(c.Right), strings.ToUpper(c.Shoot), strings.ToUpper(c.PlaceBomb)))
	}
	lines = append(lines, "P: pause | Q: quit")
	return dimStyle.Render(strings.Join(lines, "\n"))
}

// RenderScores renders the top of the high-score table.
func RenderScores(board *scoreboard.Board, n int) string {
	if board == nil || len(board.Entries) == 0 {
		return dimStyle.Render("No high scores yet")
	}
	lines := []string{titleStyle.Render("High scores")}
	for i, e := range board.Top(n) {
		lines = append(lines, fmt.Sprintf("%2d. %-16s %3d", i+1, e.Name, e.Score))
	}
	return strings.Join(lines, "\n")
}
