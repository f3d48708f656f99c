package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type symbol string

func (s symbol) String() string { return string(s) }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: " warn ", want: LevelWarn},
		{input: "Error", want: LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
	assert.Equal(t, "level(9)", Level(9).String())
}

func mustParse(t *testing.T, name string) Level {
	t.Helper()
	level, err := ParseLevel(name)
	require.NoError(t, err)
	return level
}

func TestLoggerFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelInfo)

	logger.Debug("dropped")
	logger.With(String("component", "config")).Info("precision applied",
		Int("digits", 6),
		Float64("tolerance", 1e-6),
		Stringer("width", symbol("3 m")),
		Bool("changed", true),
		Duration("took", time.Millisecond),
		Uint64("hash", 42),
		Error(errors.New("boom")),
		Any("raw", []int{1}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "precision applied", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "config", fields["component"])
	assert.Equal(t, int64(6), fields["digits"])
	assert.Equal(t, "3 m", fields["width"])
	assert.Equal(t, "boom", fields["error"])

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug("kept")
	assert.Equal(t, 1, logs.FilterMessage("kept").Len())

	logger.SetLevel(LevelError)
	logger.Log(LevelWarn, "quiet")
	logger.Log(LevelError, "loud")
	assert.Equal(t, 0, logs.FilterMessage("quiet").Len())
	assert.Equal(t, 1, logs.FilterMessage("loud").Len())
}

func TestNop(t *testing.T) {
	logger := NewNop()
	logger.Info("nothing")
	assert.Equal(t, LevelInfo, logger.GetLevel())
	assert.NotNil(t, logger.WithContext(t.Context()))
}
