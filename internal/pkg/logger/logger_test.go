package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stderr}) })

	l := WithField("stage", "organizations")
	l.Info().Int("count", 6).Msg("ensured")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["stage"] != "organizations" || entry["message"] != "ensured" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["count"] != float64(6) {
		t.Errorf("expected count 6, got %v", entry["count"])
	}
}

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stderr}) })

	Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected global level warn, got %s", zerolog.GlobalLevel())
	}
	Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Errorf("expected warn to be written")
	}
}
