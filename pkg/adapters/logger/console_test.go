package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/c63/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden %d", 1)
	log.Info("Frame %d written: %d bytes", 3, 120)
	log.Warn("careful")
	log.Error("broken")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out.String(), "Frame 3 written: 120 bytes") {
		t.Errorf("stdout = %q", out.String())
	}
	if got := errOut.String(); got != "careful\nbroken\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &out).WithComponent("encoder")

	log.Debug("Frame %d: keyframe, PSNR Y %.2f dB", 0, 42.5)

	if got := out.String(); got != "[encoder] Frame 0: keyframe, PSNR Y 42.50 dB\n" {
		t.Errorf("output = %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out)

	log.Error("broken")

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ports.LogLevel
	}{
		{"debug", ports.LevelDebug},
		{"warn", ports.LevelWarn},
		{"quiet", ports.LevelQuiet},
		{"bogus", ports.LevelInfo},
	}
	for _, tt := range tests {
		if got := ports.ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, ok := ports.LookupLogLevel("bogus"); ok {
		t.Error("LookupLogLevel accepted an unknown name")
	}
	if got := ports.LevelWarn.String(); got != "warn" {
		t.Errorf("LevelWarn.String() = %q", got)
	}
}
