package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/etnz/budget/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var b bytes.Buffer
	c := config.Default()
	c.LogFormat = "json"
	c.LogLevel = "info"

	log := New(c, &b)
	log.Debug().Msg("hidden")
	log.Info().Str("balance", "-200").Msg("negative balance")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &entry), "output: %s", b.String())
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "negative balance", entry["message"])
	assert.Equal(t, "-200", entry["balance"])
	assert.Contains(t, entry, "time")
}

func TestNew_Level(t *testing.T) {
	testCases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"nonsense", zerolog.WarnLevel},
	}
	for _, tc := range testCases {
		c := config.Default()
		c.LogLevel = tc.level
		if got := New(c, &bytes.Buffer{}).GetLevel(); got != tc.want {
			t.Errorf("New(level=%q).GetLevel() = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestNew_Console(t *testing.T) {
	var b bytes.Buffer
	log := New(config.Default(), &b)
	log.Warn().Msg("careful")
	assert.Contains(t, b.String(), "careful")
}
