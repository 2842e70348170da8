package summarizer

import (
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Input: InputInfo{
			Path:         "foreman.yuv",
			Width:        350,
			Height:       286,
			PaddedWidth:  352,
			PaddedHeight: 288,
		},
		Settings: Settings{
			QP:               25,
			SearchRange:      16,
			KeyframeInterval: 100,
			Container:        "mp4",
		},
		Output: OutputInfo{
			Path:         "foreman.mp4",
			Frames:       300,
			Keyframes:    3,
			Bytes:        1024 * 1024,
			BitsPerPixel: 0.0837,
		},
		Quality: QualityInfo{
			PSNRY:   36.123,
			PSNRU:   40.5,
			PSNRV:   41,
			MeanSAD: 210.44,
		},
		Timing: TimingInfo{
			ElapsedMs: 2500,
			FPS:       120,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# Encode Summary",
		"2024-01-15T10:30:00Z",
		"| File | foreman.yuv |",
		"| Picture Size | 350x286 |",
		"| Padded Size | 352x288 |",
		"| QP | 25 |",
		"| Container | mp4 |",
		"| Frame Limit | All |",
		"| Frames | 300 |",
		"| Keyframes | 3 |",
		"| Coded Size | 1.00 MB |",
		"| Bits per Pixel | 0.084 |",
		"| PSNR Y | 36.12 dB |",
		"| Mean SAD | 210.4 |",
		"| Elapsed | 2500 ms |",
		"| Encode Speed | 120.0 fps |",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}

	if strings.Contains(result, "File Size") {
		t.Error("file size row should be omitted when unknown")
	}
	if strings.Contains(result, "Generated by") {
		t.Error("footer should be omitted without a version")
	}
}

func TestMarkdownFormatter_Format_Optional(t *testing.T) {
	summary := testSummary()
	summary.Settings.FrameLimit = 50
	summary.Output.FileSize = 1536

	result := NewMarkdownFormatter().Format(summary)

	if !strings.Contains(result, "| Frame Limit | 50 |") {
		t.Error("expected frame limit row")
	}
	if !strings.Contains(result, "| File Size | 1.50 KB |") {
		t.Error("expected file size row")
	}
}

func TestMarkdownFormatter_Sections(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	sections := []string{"## Input", "## Settings", "## Output", "## Quality", "## Timing"}
	last := -1
	for _, section := range sections {
		i := strings.Index(result, section)
		if i < 0 {
			t.Errorf("missing section %q", section)
			continue
		}
		if i < last {
			t.Errorf("section %q out of order", section)
		}
		last = i
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Encode Summary": "エンコードサマリー",
			"Frames":         "フレーム数",
			"All":            "すべて",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(testSummary())

	for _, want := range []string{"エンコードサマリー", "| フレーム数 | 300 |", "| Frame Limit | すべて |"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(testSummary())

	if !strings.Contains(result, "Generated by c63 v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
