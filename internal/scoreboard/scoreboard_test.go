package scoreboard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := "ANA,3\n\nBEN,7\r\nCLEO,x\nDAN,3,extra\n"

	b, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "BEN", Score: 7},
		{Name: "ANA", Score: 3},
		{Name: "CLEO", Score: 0},
		{Name: "DAN", Score: 0}, // Split on the first comma only
	}, b.Entries)
}

func TestAdd(t *testing.T) {
	b := &Board{Entries: []Entry{{"A", 9}, {"B", 5}, {"C", 5}, {"D", 1}}}

	rank := b.Add("  zoe ", 5)
	assert.Equal(t, 3, rank, "ties go after existing entries")
	assert.Equal(t, []Entry{{"A", 9}, {"B", 5}, {"C", 5}, {"ZOE", 5}, {"D", 1}}, b.Entries)

	assert.Equal(t, 0, b.Add("top", 10))
	assert.Equal(t, 6, b.Add("last", 0))
	assert.Equal(t, "TOP", b.Entries[0].Name)
}

func TestAddEmptyBoard(t *testing.T) {
	b := &Board{}
	assert.Equal(t, 0, b.Add("solo", 2))
	assert.Equal(t, []Entry{{"SOLO", 2}}, b.Entries)
}

func TestTop(t *testing.T) {
	b := &Board{Entries: []Entry{{"A", 3}, {"B", 2}}}
	assert.Len(t, b.Top(5), 2)
	assert.Equal(t, []Entry{{"A", 3}}, b.Top(1))
	assert.Empty(t, b.Top(-1))
}

func TestWrite(t *testing.T) {
	b := &Board{Entries: []Entry{{"A", 3}, {"B", 2}}}
	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf))
	assert.Equal(t, "A,3\nB,2\n", buf.String())
}

func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, b.Entries)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("OLD,4\n"), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	b.Add("new", 6)
	require.NoError(t, b.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NEW,6\nOLD,4\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}
