// Package main provides the CLI entry point for roundlogo.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/roundlogo/pkg/adapters/filesink"
	"github.com/user/roundlogo/pkg/adapters/ggrenderer"
	"github.com/user/roundlogo/pkg/adapters/logger"
	"github.com/user/roundlogo/pkg/adapters/nullsink"
	"github.com/user/roundlogo/pkg/adapters/osfilesystem"
	"github.com/user/roundlogo/pkg/config"
	"github.com/user/roundlogo/pkg/logo"
	"github.com/user/roundlogo/pkg/ports"
	"github.com/user/roundlogo/pkg/stages/crop"
	"github.com/user/roundlogo/pkg/stages/layout"
	"github.com/user/roundlogo/pkg/summarizer"
	"github.com/user/roundlogo/pkg/typeface"
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("failure already reported")

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Compose ComposeCmd `cmd:"" help:"Compose a circular logo with text from an image."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ComposeCmd defines the compose subcommand.
type ComposeCmd struct {
	// Input/Output
	Input  string `arg:"" optional:"" help:"Source image (JPEG, PNG, GIF, BMP or TIFF)."`
	Output string `short:"o" help:"Output PNG file path."`

	// Text options
	Text     *string `short:"t" help:"Text drawn next to the circle (default: My Logo)."`
	FontSize *int    `short:"s" help:"Font size in points (default: 40)."`
	Position *string `short:"p" help:"Text position: beside or below (default: below)."`
	Font     *string `short:"f" help:"Bold TrueType font file (default: arialbd.ttf)."`

	// Circle dimensions
	Width  *int `short:"W" help:"Circle width in pixels (default: 200)."`
	Height *int `short:"H" help:"Circle height in pixels (default: 200)."`

	// Config file
	Config string `short:"c" type:"existingfile" help:"YAML file with default options."`

	// Summary
	Summary string `help:"Write a Markdown summary of the run to this file."`

	// Debug options
	Debug    bool   `short:"d" help:"Save intermediate mask, round image and layout."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("roundlogo"),
		kong.Description(l10n.T("Create round logos with text from a single image.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if errors.Is(err, errReported) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}

// Run executes the compose command.
func (cmd *ComposeCmd) Run() error {
	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	opts, err := cmd.buildOptions()
	if err != nil {
		log.Error("Error: %s", err.Error())
		return errReported
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	fonts := typeface.New(log)

	// Create debug sink
	var sink ports.DebugSink
	if cmd.Debug {
		if err := fs.MkdirAll(cmd.DebugDir); err != nil {
			log.Error("Error: %s", fmt.Errorf("create debug directory: %w", err).Error())
			return errReported
		}
		sink = filesink.New(cmd.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	cropStage := crop.NewStage(renderer, sink, log)
	layoutStage := layout.NewStage()

	composer := logo.New(cropStage, layoutStage, fonts, renderer, fs, sink, log)

	result, err := composer.Run(ctx, opts)
	if err != nil {
		return errReported
	}

	if cmd.Summary != "" {
		summary := summarizer.NewBuilder().
			WithOptions(opts).
			WithResult(result).
			Build()
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := writer.Write(cmd.Summary, summary); err != nil {
			log.Warn("Failed to write summary: %v", err)
		} else {
			log.Debug("Summary written to %s", cmd.Summary)
		}
	}

	return nil
}

// buildOptions layers CLI flags over the config file over the defaults.
func (cmd *ComposeCmd) buildOptions() (logo.Options, error) {
	builder := config.NewBuilder()
	if cmd.Config != "" {
		cfg, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return logo.Options{}, fmt.Errorf("load config: %w", err)
		}
		builder = config.NewBuilderFromConfig(cfg)
	}

	if cmd.Input != "" {
		builder.WithInput(cmd.Input)
	}
	if cmd.Output != "" {
		builder.WithOutput(cmd.Output)
	}
	if cmd.Text != nil {
		builder.WithText(*cmd.Text)
	}
	if cmd.FontSize != nil {
		builder.WithFontSize(*cmd.FontSize)
	}
	if cmd.Position != nil {
		builder.WithTextPosition(*cmd.Position)
	}
	if cmd.Font != nil {
		builder.WithFontPath(*cmd.Font)
	}
	if cmd.Width != nil {
		builder.WithWidth(*cmd.Width)
	}
	if cmd.Height != nil {
		builder.WithHeight(*cmd.Height)
	}

	return builder.Build(), nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("roundlogo version %s", version))
	return nil
}
