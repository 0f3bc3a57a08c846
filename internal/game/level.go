package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// Level is a named map read from a level description.
type Level struct {
	Name string
	Grid *TileGrid
}

// LevelDecoder reads consecutive levels from a text stream.
//
// Each level is a bracketed name followed by cols*rows whitespace-separated
// tile indices in row-major order:
//
//	[Crossroads]
//	0 0 1 3 ...
//
// Out-of-range or non-numeric indices become grass, and so does every cell
// left over when the stream runs dry. Only real read errors are returned.
type LevelDecoder struct {
	r        *bufio.Reader
	cols     int
	rows     int
	tileSize int
}

// NewLevelDecoder returns a decoder producing grids of the configured size.
func NewLevelDecoder(r io.Reader, config GameConfig) *LevelDecoder {
	return &LevelDecoder{
		r:        bufio.NewReader(r),
		cols:     config.Cols,
		rows:     config.Rows,
		tileSize: config.TileSize,
	}
}

// Decode reads the next level. With an exhausted stream it returns an
// all-grass level with an empty name.
func (d *LevelDecoder) Decode() (*Level, error) {
	name, err := d.readName()
	if err != nil {
		return nil, fmt.Errorf("read level name: %w", err)
	}

	lvl := &Level{Name: name, Grid: NewGrid(d.cols, d.rows, d.tileSize)}
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			tok, err := d.readToken()
			if err != nil {
				return nil, fmt.Errorf("read tile (%d,%d) of level %q: %w", col, row, name, err)
			}
			lvl.Grid.cells[row][col] = parseTile(tok)
		}
	}
	return lvl, nil
}

// DecodeLevels reads n levels from r.
func DecodeLevels(r io.Reader, config GameConfig, n int) ([]*Level, error) {
	dec := NewLevelDecoder(r, config)
	levels := make([]*Level, 0, n)
	for i := 0; i < n; i++ {
		lvl, err := dec.Decode()
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func parseTile(tok string) TileType {
	if tok == "" {
		return Grass
	}
	n, err := strconv.Atoi(tok)
	if err != nil || !TileType(n).Valid() {
		return Grass
	}
	return TileType(n)
}

// readName skips to the next '[' and returns the text up to ']'.
func (d *LevelDecoder) readName() (string, error) {
	for {
		b, err := d.r.ReadByte()
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if b == '[' {
			break
		}
	}
	name, err := d.r.ReadString(']')
	if errors.Is(err, io.EOF) {
		return name, nil
	}
	if err != nil {
		return "", err
	}
	return name[:len(name)-1], nil
}

// readToken returns the next whitespace-delimited word, or "" at EOF.
// A '[' ends the token without being consumed so a short level never eats
// the header of the next one.
func (d *LevelDecoder) readToken() (string, error) {
	var tok []rune
	for {
		r, _, err := d.r.ReadRune()
		if errors.Is(err, io.EOF) {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if r == '[' {
			if err := d.r.UnreadRune(); err != nil {
				return "", err
			}
			return string(tok), nil
		}
		if unicode.IsSpace(r) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		tok = append(tok, r)
	}
}
