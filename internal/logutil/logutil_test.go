package logutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      slog.Level
	}{
		{"default is warn", 0, false, slog.LevelWarn},
		{"single v is info", 1, false, slog.LevelInfo},
		{"double v is debug", 2, false, slog.LevelDebug},
		{"more v stays debug", 5, false, slog.LevelDebug},
		{"quiet suppresses", 3, true, slog.Level(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromVerbosity(tt.verbosity, tt.quiet))
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("visible", "key", "value")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewDiscard(t *testing.T) {
	log := NewDiscard()
	log.Error("dropped")
}
