package summarizer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	input := InputInfo{Path: "foreman.yuv", Width: 352, Height: 288, PaddedWidth: 352, PaddedHeight: 288}
	settings := Settings{QP: 25, SearchRange: 16, KeyframeInterval: 100, Container: "c63"}
	output := OutputInfo{Path: "foreman.c63", Frames: 10, Keyframes: 1, Bytes: 4096, BitsPerPixel: 0.032}
	quality := QualityInfo{PSNRY: 36.5, PSNRU: 40.1, PSNRV: 41.2, MeanSAD: 120}

	summary := NewBuilder().
		WithInput(input).
		WithSettings(settings).
		WithOutput(output).
		WithQuality(quality).
		WithTiming(1500*time.Millisecond, 6.7).
		Build()

	if diff := cmp.Diff(input, summary.Input); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(settings, summary.Settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(output, summary.Output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(quality, summary.Quality); diff != "" {
		t.Errorf("quality mismatch (-want +got):\n%s", diff)
	}
	if summary.Timing.ElapsedMs != 1500 || summary.Timing.FPS != 6.7 {
		t.Errorf("timing = %+v", summary.Timing)
	}
}

func TestBuilder_Chaining(t *testing.T) {
	b := NewBuilder()

	if b.WithInput(InputInfo{}) != b {
		t.Error("WithInput should return the same builder")
	}
	if b.WithSettings(Settings{}) != b {
		t.Error("WithSettings should return the same builder")
	}
	if b.WithOutput(OutputInfo{}) != b {
		t.Error("WithOutput should return the same builder")
	}
	if b.WithQuality(QualityInfo{}) != b {
		t.Error("WithQuality should return the same builder")
	}
	if b.WithTiming(0, 0) != b {
		t.Error("WithTiming should return the same builder")
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Input.Path })

	if got := f.Format(&Summary{Input: InputInfo{Path: "in.yuv"}}); got != "in.yuv" {
		t.Errorf("Format() = %q, want in.yuv", got)
	}
}
