package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/amalg/go-arena/internal/game"
	"github.com/amalg/go-arena/internal/logger"
	"github.com/amalg/go-arena/internal/scoreboard"
	"github.com/amalg/go-arena/internal/ui"
)

func main() {
	levelsFile := flag.String("levels", "maps.txt", "Level description file (missing: procedural maps)")
	levelCount := flag.Int("level-count", 3, "Number of levels to read from the level file")
	scoresFile := flag.String("scores", scoreboard.DefaultPath, "High-score file")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	logLevel := flag.String("log-level", "", "Log level (default: $LOG_LEVEL or info)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for maps, power-ups and enemies")
	duration := flag.Duration("duration", 60*time.Second, "Match length")
	tickRate := flag.Int("tick-rate", 60, "Simulation ticks per second")
	scope := flag.Int("bomb-scope", 1, "Bomb blast reach in cells")
	clamp := flag.Bool("blast-clamp", false, "Stop bomb blasts at the first obstruction")
	flag.Parse()

	// Redirect logs before anything else runs. Any stderr output corrupts
	// Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.Init(f, *logLevel)
	} else {
		logger.Init(io.Discard, *logLevel)
	}
	log := logger.Component("main")

	config := game.DefaultConfig()
	config.Seed = *seed
	config.MatchDuration = *duration
	config.TickRate = *tickRate
	config.BombScope = *scope
	if *clamp {
		config.BlastMode = game.BlastClampToObstruction
	}

	levels, err := loadLevels(*levelsFile, config, *levelCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, err := scoreboard.Load(*scoresFile)
	if err != nil {
		log.WithError(err).Warn("starting with an empty score board")
		board = &scoreboard.Board{}
	}

	log.WithFields(logrus.Fields{
		"levels":   len(levels),
		"seed":     config.Seed,
		"duration": config.MatchDuration,
	}).Info("arena starting")

	engine := game.NewEngine(config, levels, nil)
	model := ui.NewModel(ui.Options{
		Engine:    engine,
		Board:     board,
		ScorePath: *scoresFile,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadLevels reads count levels from path. A missing file means procedural
// maps and is not an error.
func loadLevels(path string, config game.GameConfig, count int) ([]*game.Level, error) {
	if path == "" || count <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Component("main").WithField("path", path).Info("no level file, generating maps")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open levels: %w", err)
	}
	defer f.Close()

	levels, err := game.DecodeLevels(f, config, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}
