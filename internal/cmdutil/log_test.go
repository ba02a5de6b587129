package cmdutil

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]log.Level{
		"debug": log.DebugLevel, "INFO": log.InfoLevel, "": log.InfoLevel,
		"warn": log.WarnLevel, "warning": log.WarnLevel, " error ": log.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewLogger_QuietRaisesLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, LevelDebug, true)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, l.GetLevel())
	l.Info("hidden")
	Warnf(l, "shown %d", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 1")
	assert.Contains(t, buf.String(), "mininorm")

	l, err = NewLogger(&buf, LevelError, true)
	require.NoError(t, err)
	assert.Equal(t, log.ErrorLevel, l.GetLevel())
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "chatty", false)
	assert.Error(t, err)
}

func TestWarnf_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() { Warnf(nil, "x") })
}
