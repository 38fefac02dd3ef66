package logging

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gstoney/mcwire/internal/config"
	"github.com/rs/zerolog"
)

func TestInitJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(config.LogConfig{Level: "warn"}, &buf)

	l := Component("conn")
	l.Info().Msg("dropped")
	l.Warn().Int("opcode", 0x2a).Msg("unknown opcode")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{
		"level":     "warn",
		"app":       "mcwire",
		"component": "conn",
		"message":   "unknown opcode",
		"opcode":    float64(0x2a),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestInitInvalidLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(config.LogConfig{Level: "chatty"}, &buf)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", zerolog.GlobalLevel())
	}
}
