package logx

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{" warning ", WARN, false},
		{"warn", WARN, false},
		{"error", ERROR, false},
		{"loud", INFO, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"always": ColorOn,
		"off":    ColorOff,
	} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Error("Expected error for unknown color mode")
	}
}

func TestWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, INFO)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	log := NewLogToX(l, "convert")
	log.LogPrintf(DEBUG, "hidden %d", 1)
	log.LogPrintf(WARN, "shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("DEBUG message should be filtered at INFO level: %q", out)
	}
	want := "03:04:05  WARN [convert] shown 2\n"
	if out != want {
		t.Errorf("Output = %q, want %q", out, want)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic
	Discard.LogPrintf(ERROR, "nothing %s", "here")
	NewLogToX(Discard, "x").LogPrintf(ERROR, "nothing")
}
