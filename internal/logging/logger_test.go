package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Info().Int("tokens", 3).Msg("split complete")

	out := buf.String()
	if !strings.Contains(out, "split complete") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "tokens=3") {
		t.Errorf("output %q missing field", out)
	}
	if l.Output() != &buf {
		t.Error("Output() did not return the configured writer")
	}
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := NewLogger(&first)
	l.SetOutput(&second)
	l.Warnf("moved %d", 1)

	if first.Len() != 0 {
		t.Errorf("old writer received %q", first.String())
	}
	if !strings.Contains(second.String(), "moved 1") {
		t.Errorf("new writer got %q", second.String())
	}
}

func TestDebugHiddenAtInfoLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	l := NewLogger(&buf)

	SetGlobalLevel(zerolog.InfoLevel)
	l.Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}

	SetGlobalLevel(zerolog.DebugLevel)
	l.Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug message missing at debug level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
