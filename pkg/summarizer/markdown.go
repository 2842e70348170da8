package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as Markdown tables.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion adds a "Generated by" footer naming the given version.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Encode Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format(time.RFC3339))

	f.section(&b, "Input", [][2]string{
		{t("File"), s.Input.Path},
		{t("Picture Size"), fmt.Sprintf("%dx%d", s.Input.Width, s.Input.Height)},
		{t("Padded Size"), fmt.Sprintf("%dx%d", s.Input.PaddedWidth, s.Input.PaddedHeight)},
	})

	limit := t("All")
	if s.Settings.FrameLimit > 0 {
		limit = fmt.Sprintf("%d", s.Settings.FrameLimit)
	}
	f.section(&b, "Settings", [][2]string{
		{t("QP"), fmt.Sprintf("%d", s.Settings.QP)},
		{t("Search Range"), fmt.Sprintf("%d", s.Settings.SearchRange)},
		{t("Keyframe Interval"), fmt.Sprintf("%d", s.Settings.KeyframeInterval)},
		{t("Container"), s.Settings.Container},
		{t("Frame Limit"), limit},
	})

	output := [][2]string{
		{t("File"), s.Output.Path},
		{t("Frames"), fmt.Sprintf("%d", s.Output.Frames)},
		{t("Keyframes"), fmt.Sprintf("%d", s.Output.Keyframes)},
		{t("Coded Size"), formatBytes(s.Output.Bytes)},
	}
	if s.Output.FileSize > 0 {
		output = append(output, [2]string{t("File Size"), formatBytes(s.Output.FileSize)})
	}
	output = append(output, [2]string{t("Bits per Pixel"), fmt.Sprintf("%.3f", s.Output.BitsPerPixel)})
	f.section(&b, "Output", output)

	f.section(&b, "Quality", [][2]string{
		{t("PSNR Y"), formatPSNR(s.Quality.PSNRY)},
		{t("PSNR U"), formatPSNR(s.Quality.PSNRU)},
		{t("PSNR V"), formatPSNR(s.Quality.PSNRV)},
		{t("Mean SAD"), fmt.Sprintf("%.1f", s.Quality.MeanSAD)},
	})

	f.section(&b, "Timing", [][2]string{
		{t("Elapsed"), fmt.Sprintf("%d ms", s.Timing.ElapsedMs)},
		{t("Encode Speed"), fmt.Sprintf("%.1f fps", s.Timing.FPS)},
	})

	if f.version != "" {
		fmt.Fprintf(&b, "---\n\n%s c63 %s\n", t("Generated by"), f.version)
	}

	return b.String()
}

func (f *MarkdownFormatter) section(b *strings.Builder, title string, rows [][2]string) {
	t := f.translate
	fmt.Fprintf(b, "## %s\n\n", t(title))
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", row[0], row[1])
	}
	b.WriteString("\n")
}

func formatPSNR(db float64) string {
	return fmt.Sprintf("%.2f dB", db)
}

func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit*unit:
		return fmt.Sprintf("%.2f GB", float64(n)/(unit*unit*unit))
	case n >= unit*unit:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

var _ Formatter = (*MarkdownFormatter)(nil)
