package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/amalg/go-arena/internal/game"
	"github.com/amalg/go-arena/internal/logger"
	"github.com/amalg/go-arena/internal/scoreboard"
)

// fireTicks is how many ticks an explosion stays on screen.
const fireTicks = 12

// maxNameLen caps the winner's name on the game-over screen.
const maxNameLen = 16

// tickMsg drives the simulation.
type tickMsg time.Time

// screen is the current phase of the UI.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenGameOver
)

// Options configures a Model.
type Options struct {
	Engine    *game.Engine
	Board     *scoreboard.Board // High scores; may be nil
	ScorePath string            // Where the board is saved; empty disables saving
	Clock     func() time.Time  // Defaults to time.Now
}

// Model is the Bubbletea model for a local two-player match. Update and View
// run on the same goroutine, so the engine is read and stepped directly.
type Model struct {
	engine    *game.Engine
	keys      *KeyTracker
	pressed   []string
	fire      map[game.Cell]int
	board     *scoreboard.Board
	scorePath string
	clock     func() time.Time

	screen   screen
	name     []rune
	saved    bool
	err      error
	quitting bool

	log *logrus.Entry
}

// NewModel creates a model on the title screen.
func NewModel(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	board := opts.Board
	if board == nil {
		board = &scoreboard.Board{}
	}

	var groups [][]string
	for _, p := range opts.Engine.State.Players {
		mv := p.Controls.Movement()
		groups = append(groups, mv[:])
	}

	return Model{
		engine:    opts.Engine,
		keys:      NewKeyTracker(groups...),
		fire:      make(map[game.Cell]int),
		board:     board,
		scorePath: opts.ScorePath,
		clock:     clock,
		screen:    screenTitle,
		log:       logger.Component("ui"),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.engine.Config.TickDuration(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages (key presses, ticks).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}

	return m, nil
}

// step advances the engine by one tick while a match is being played.
func (m *Model) step(now time.Time) {
	for c, n := range m.fire {
		if n <= 1 {
			delete(m.fire, c)
		} else {
			m.fire[c] = n - 1
		}
	}

	if m.screen != screenPlaying || m.engine.Paused() {
		return
	}

	in := game.Input{Held: m.keys.Held(now), Pressed: m.pressed}
	m.pressed = nil
	for _, ev := range m.engine.Step(in) {
		switch ev := ev.(type) {
		case game.Explosion:
			for _, c := range ev.Cells {
				m.fire[c] = fireTicks
			}
		case game.RoundOver:
			m.keys.Reset()
			clear(m.fire)
		case game.MatchOver:
			m.screen = screenGameOver
			m.name = m.name[:0]
			m.saved = false
			m.err = nil
			m.keys.Reset()
		}
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenTitle:
		switch key {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.screen = screenPlaying
			m.log.Info("match started")
		}

	case screenPlaying:
		switch key {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "p":
			if m.engine.Paused() {
				m.engine.Resume()
			} else {
				m.engine.Pause()
				m.keys.Reset()
				m.pressed = nil
			}
		default:
			if !m.engine.Paused() && m.keys.Press(key, m.clock()) {
				m.pressed = append(m.pressed, key)
			}
		}

	case screenGameOver:
		return m.handleNameEntry(msg)
	}

	return m, nil
}

// handleNameEntry edits the winner's name and records it on enter. A second
// enter starts a new match.
func (m Model) handleNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saved {
		switch msg.String() {
		case "enter":
			m.engine.NewMatch()
			m.screen = screenPlaying
			clear(m.fire)
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		m.record()
	case tea.KeyBackspace:
		if len(m.name) > 0 {
			m.name = m.name[:len(m.name)-1]
		}
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			if r != ',' && len(m.name) < maxNameLen {
				m.name = append(m.name, r)
			}
		}
	}
	return m, nil
}

// record puts the winner on the board and saves it.
func (m *Model) record() {
	s := m.engine.State
	if s.Winner < 0 || s.Winner >= len(s.Players) {
		m.saved = true
		return
	}
	name := strings.TrimSpace(string(m.name))
	if name == "" {
		name = fmt.Sprintf("PLAYER %d", s.Winner+1)
	}
	m.board.Add(name, s.Players[s.Winner].Score)
	m.saved = true

	if m.scorePath == "" {
		return
	}
	if err := m.board.Save(m.scorePath); err != nil {
		m.err = err
		m.log.WithError(err).Error("could not save scores")
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	switch m.screen {
	case screenTitle:
		return m.viewTitle()
	case screenGameOver:
		return m.viewGameOver()
	}

	s := m.engine.State
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderHUD(m.engine),
		RenderBoard(s, m.fire),
		RenderControls(s.Players),
	) + "\n"
}

func (m Model) viewTitle() string {
	parts := []string{
		titleStyle.Render("TILE ARENA"),
		"",
		RenderControls(m.engine.State.Players),
		"",
		RenderScores(m.board, 5),
		"",
		"Press [Enter] to start!",
	}
	return hudBorderStyle.Render(strings.Join(parts, "\n")) + "\n"
}

func (m Model) viewGameOver() string {
	s := m.engine.State
	parts := []string{titleStyle.Render("GAME OVER"), ""}
	if s.Winner >= 0 {
		parts = append(parts, winnerStyle.Render(fmt.Sprintf("PLAYER %d WINS %d TO %d",
			s.Winner+1, s.Players[s.Winner].Score, s.Players[1-s.Winner].Score)))
	}
	parts = append(parts, "")

	if !m.saved {
		parts = append(parts, "Enter your name: "+string(m.name)+"_", dimStyle.Render("[Enter] to record"))
	} else {
		parts = append(parts, RenderScores(m.board, 10), "")
		if m.err != nil {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ff4444")).
				Render("Error: "+m.err.Error()), "")
		}
		parts = append(parts, "[Enter] new match | [Q] quit")
	}
	return hudBorderStyle.Render(strings.Join(parts, "\n")) + "\n"
}
