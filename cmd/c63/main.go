// Package main provides the CLI entry point for c63.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/c63/pkg/adapters/c63stream"
	"github.com/user/c63/pkg/adapters/filesink"
	"github.com/user/c63/pkg/adapters/ggrenderer"
	"github.com/user/c63/pkg/adapters/logger"
	"github.com/user/c63/pkg/adapters/mp4sink"
	"github.com/user/c63/pkg/adapters/nullsink"
	"github.com/user/c63/pkg/adapters/osfilesystem"
	"github.com/user/c63/pkg/adapters/yuvfile"
	"github.com/user/c63/pkg/config"
	"github.com/user/c63/pkg/encoder"
	"github.com/user/c63/pkg/orchestrator"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/stages/encode"
	"github.com/user/c63/pkg/stages/inspect"
	"github.com/user/c63/pkg/summarizer"
	"github.com/user/c63/pkg/yuv"
)

var version = "dev"

var errNotImplemented = errors.New("decoding is not implemented")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "c63",
		Usage:   l10n.T("Encode raw YUV 4:2:0 video with the c63 codec"),
		Version: version,
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			versionCommand(),
		},
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     l10n.T("Encode a raw YUV file"),
		ArgsUsage: "[input.yuv]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Input")},
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: l10n.T("Input YUV file"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: l10n.T("Picture width in pixels"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Picture height in pixels"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "frames", Aliases: []string{"f"}, Usage: l10n.T("Stop after this many frames (0 = all)"), Category: l10n.T("Input")},

			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output file path (required)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "container", Usage: l10n.T("Output container (c63, mp4; default: from the output extension)"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "fps", Usage: l10n.T("Frame rate recorded in MP4 output"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "recon", Usage: l10n.T("Write reconstructed pictures to this YUV file"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (Markdown format)"), Category: l10n.T("Output")},

			&cli.IntFlag{Name: "qp", Aliases: []string{"q"}, Usage: l10n.T("Quality parameter (1-255, larger is coarser)"), Category: l10n.T("Encoding")},
			&cli.IntFlag{Name: "search-range", Usage: l10n.T("Luma motion search range in pixels"), Category: l10n.T("Encoding")},
			&cli.IntFlag{Name: "keyframe-interval", Usage: l10n.T("Frames between keyframes"), Category: l10n.T("Encoding")},

			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},

			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Action: runEncode,
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: l10n.T("Decode a c63 stream to raw YUV"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: l10n.T("Input c63 file"), Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output YUV file"), Required: true},
		},
		Action: func(c *cli.Context) error {
			return fmt.Errorf("%s -> %s: %w", c.String("input"), c.String("output"), errNotImplemented)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("c63 version %s", version))
			return nil
		},
	}
}

// buildConfig starts from the defaults or the --config file and applies the
// flags that were set on the command line.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	} else if c.Args().Present() {
		cfg.Input = c.Args().First()
	}
	setString(c, "output", &cfg.Output)
	setInt(c, "width", &cfg.Width)
	setInt(c, "height", &cfg.Height)
	setInt(c, "frames", &cfg.Frames)
	setString(c, "container", &cfg.Container)
	setInt(c, "fps", &cfg.FPS)
	setString(c, "recon", &cfg.Recon)
	setString(c, "summary", &cfg.Summary)
	setInt(c, "qp", &cfg.QP)
	setInt(c, "search-range", &cfg.SearchRange)
	setInt(c, "keyframe-interval", &cfg.KeyframeInterval)
	setString(c, "debug-dir", &cfg.DebugDir)
	setString(c, "log-level", &cfg.LogLevel)
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}

	return cfg, cfg.Validate()
}

func setString(c *cli.Context, name string, dst *string) {
	if c.IsSet(name) {
		*dst = c.String(name)
	}
}

func setInt(c *cli.Context, name string, dst *int) {
	if c.IsSet(name) {
		*dst = c.Int(name)
	}
}

func runEncode(c *cli.Context) (err error) {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	enc, err := encoder.NewWithOptions(cfg.Width, cfg.Height, cfg.EncoderOptions())
	if err != nil {
		return err
	}
	geom := enc.Geometry()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	in, err := fs.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()
	reader := yuvfile.NewReader(bufio.NewReader(in), geom)

	out, err := fs.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer closeFile(out, &err)
	counted := &countingWriter{w: out}

	var writer ports.FrameWriter
	switch cfg.ResolvedContainer() {
	case config.ContainerMP4:
		writer = mp4sink.New(counted, cfg.FPS)
	default:
		writer = c63stream.NewWriter(counted)
	}

	var recon ports.PictureWriter
	if cfg.Recon != "" {
		f, cerr := fs.Create(cfg.Recon)
		if cerr != nil {
			return fmt.Errorf("create reconstruction file: %w", cerr)
		}
		defer closeFile(f, &err)
		buffered := bufio.NewWriter(f)
		defer flush(buffered, &err)
		recon = yuvfile.NewWriter(buffered, geom)
	}

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	encodeStage := encode.NewStage(enc, log)
	inspectStage := inspect.NewStage(renderer, sink, log, geom, inspect.DefaultScale)

	orch := orchestrator.New(reader, encodeStage, inspectStage, writer, recon, sink, log)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(encodeStage.Header()))
	if err != nil {
		return err
	}
	log.Info(l10n.F("Output saved to %s", cfg.Output))

	if cfg.Summary != "" {
		summary := buildSummary(cfg, geom, result, counted.n)
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
			summarizer.WithVersion(version),
		), fs)
		if err := w.Write(cfg.Summary, summary); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cfg.Summary))
		}
	}

	return nil
}

func buildSummary(cfg config.Config, geom yuv.Geometry, result orchestrator.RunResult, fileSize int64) *summarizer.Summary {
	return summarizer.NewBuilder().
		WithInput(summarizer.InputInfo{
			Path:         cfg.Input,
			Width:        geom.Width,
			Height:       geom.Height,
			PaddedWidth:  result.PaddedWidth,
			PaddedHeight: result.PaddedHeight,
		}).
		WithSettings(summarizer.Settings{
			QP:               cfg.QP,
			SearchRange:      cfg.SearchRange,
			KeyframeInterval: cfg.KeyframeInterval,
			Container:        cfg.ResolvedContainer(),
			FrameLimit:       cfg.Frames,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:         cfg.Output,
			Frames:       result.Frames,
			Keyframes:    result.Keyframes,
			Bytes:        result.Bytes,
			FileSize:     fileSize,
			BitsPerPixel: result.BitsPerPixel(),
		}).
		WithQuality(summarizer.QualityInfo{
			PSNRY:   result.MeanPSNR(yuv.ComponentY),
			PSNRU:   result.MeanPSNR(yuv.ComponentU),
			PSNRV:   result.MeanPSNR(yuv.ComponentV),
			MeanSAD: result.MeanSAD(),
		}).
		WithTiming(result.Elapsed, result.EncodeFPS()).
		Build()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func closeFile(f io.Closer, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func flush(w *bufio.Writer, err *error) {
	if ferr := w.Flush(); ferr != nil && *err == nil {
		*err = ferr
	}
}
