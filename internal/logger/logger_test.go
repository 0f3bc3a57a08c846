package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLevelAndOutput(t *testing.T) {
	saved := Log
	defer func() { Log = saved }()

	t.Setenv("LOG_FORMAT", "text")
	var buf bytes.Buffer
	Init(&buf, "debug")

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Component("bomb").Debug("fuse lit")
	assert.Contains(t, buf.String(), "component=bomb")
	assert.Contains(t, buf.String(), "fuse lit")
}

func TestInitFallsBackToEnv(t *testing.T) {
	saved := Log
	defer func() { Log = saved }()

	t.Setenv("LOG_LEVEL", "warn")
	Init(&bytes.Buffer{}, "")
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	Init(&bytes.Buffer{}, "")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInitJSON(t *testing.T) {
	saved := Log
	defer func() { Log = saved }()

	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	Init(&buf, "info")
	Component("world").Info("round over")

	assert.Contains(t, buf.String(), `"component":"world"`)
}
