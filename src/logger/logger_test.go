package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}
	for in, want := range cases {
		l, err := New(in, "json")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(want), in)
		if want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(want-1), in)
		}
	}
}
