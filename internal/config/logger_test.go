package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LoggerConfig{Level: "info", Format: "json"})

	logger.Debug().Msg("hidden")
	logger.Info().Dur("latency", 1500*time.Millisecond).Msg("backend request")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ovenaura-storefront", entry["app"])
	assert.Equal(t, "backend request", entry["message"])
	assert.Equal(t, float64(1500), entry["latency"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectDebug bool
		expectWarn  bool
	}{
		{name: "Debug", level: "debug", expectDebug: true, expectWarn: true},
		{name: "Error", level: "error", expectDebug: false, expectWarn: false},
		{name: "Unknown falls back to info", level: "verbose", expectDebug: false, expectWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, LoggerConfig{Level: tt.level, Format: "json"})

			logger.Debug().Msg("debug line")
			logger.Warn().Msg("warn line")

			assert.Equal(t, tt.expectDebug, strings.Contains(buf.String(), "debug line"))
			assert.Equal(t, tt.expectWarn, strings.Contains(buf.String(), "warn line"))
		})
	}
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LoggerConfig{Level: "info", Format: "console"})

	logger.Info().Str("component", "probe").Msg("backend reachable")

	out := buf.String()
	assert.Contains(t, out, "backend reachable")
	assert.Contains(t, out, "component=")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
