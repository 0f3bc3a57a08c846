// Package scoreboard keeps the high-score file: one "name,score" line per
// match winner, best first.
package scoreboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/amalg/go-arena/internal/logger"
)

// DefaultPath is where the arena keeps its scores unless told otherwise.
const DefaultPath = "score.txt"

// Entry is one recorded winner.
type Entry struct {
	Name  string
	Score int
}

// Board is an ordered list of entries, highest score first.
type Board struct {
	Entries []Entry
}

// Parse reads a board from r. Each line is split on its first comma; a
// score that does not parse counts as zero and blank lines are skipped.
func Parse(r io.Reader) (*Board, error) {
	log := logger.Component("scoreboard")
	b := &Board{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		name, raw, _ := strings.Cut(text, ",")
		score, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			log.WithFields(logrus.Fields{"line": line, "value": raw}).Warn("unreadable score, counting as zero")
			score = 0
		}
		b.Entries = append(b.Entries, Entry{Name: name, Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	b.sort()
	return b, nil
}

// Load reads the board at path. A missing file is an empty board.
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Component("scoreboard").WithField("path", path).Info("no score file yet")
		return &Board{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open scores: %w", err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Add records a winner. The name is upper-cased and the entry is placed after
// any existing entries with the same score. It returns the entry's rank,
// starting at 0.
func (b *Board) Add(name string, score int) int {
	e := Entry{Name: strings.ToUpper(strings.TrimSpace(name)), Score: score}
	i := sort.Search(len(b.Entries), func(i int) bool { return b.Entries[i].Score < score })
	b.Entries = append(b.Entries, Entry{})
	copy(b.Entries[i+1:], b.Entries[i:])
	b.Entries[i] = e
	return i
}

// Top returns at most n entries from the top of the board.
func (b *Board) Top(n int) []Entry {
	if n > len(b.Entries) {
		n = len(b.Entries)
	}
	if n < 0 {
		n = 0
	}
	return b.Entries[:n]
}

// Write serializes the board to w.
func (b *Board) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range b.Entries {
		if _, err := fmt.Fprintf(bw, "%s,%d\n", e.Name, e.Score); err != nil {
			return fmt.Errorf("write scores: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}

// Save rewrites the file at path. The board goes to a temporary file first
// so a failed write never truncates the existing scores.
func (b *Board) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".scores-*")
	if err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := b.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	logger.Component("scoreboard").WithFields(logrus.Fields{"path": path, "entries": len(b.Entries)}).Info("scores saved")
	return nil
}

func (b *Board) sort() {
	sort.SliceStable(b.Entries, func(i, j int) bool {
		return b.Entries[i].Score > b.Entries[j].Score
	})
}
