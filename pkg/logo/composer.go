// Package logo composes a circular crop of an image and a line of text into a PNG.
package logo

import (
	"context"
	"encoding/json"
	"errors"
	"image/color"
	iofs "io/fs"

	"github.com/user/roundlogo/pkg/pipeline"
	"github.com/user/roundlogo/pkg/ports"
	"github.com/user/roundlogo/pkg/typeface"
)

// TextColor is the fill used for the logo text.
var TextColor color.Color = color.White

// Result describes a successfully written logo.
type Result struct {
	Input  string
	Output string
	Canvas pipeline.Dimension
	Text   pipeline.Dimension
	Layout pipeline.LayoutResult
	Font   ports.ResolvedFont
	Bytes  int
}

// Composer runs the load, crop, measure, layout, draw and save steps.
type Composer struct {
	cropStage   pipeline.Stage[pipeline.CropInput, pipeline.CropResult]
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	fonts       ports.FontResolver
	renderer    ports.Renderer
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Composer.
func New(
	cropStage pipeline.Stage[pipeline.CropInput, pipeline.CropResult],
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	fonts ports.FontResolver,
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Composer {
	return &Composer{
		cropStage:   cropStage,
		layoutStage: layoutStage,
		fonts:       fonts,
		renderer:    renderer,
		fs:          fs,
		sink:        sink,
		logger:      logger,
	}
}

// Run composes the logo and reports the outcome as exactly one log line:
// info on success, error on failure. The error is also returned.
func (c *Composer) Run(ctx context.Context, opts Options) (Result, error) {
	result, err := c.Compose(ctx, opts)
	if err != nil {
		c.logger.Error("Error: %s", err.Error())
		return result, err
	}
	c.logger.Info("Logo saved successfully as '%s'", result.Output)
	return result, nil
}

// Compose writes the logo described by opts. Classified failures are
// returned as *Error; the output file is only touched by the final write.
func (c *Composer) Compose(ctx context.Context, opts Options) (Result, error) {
	result := Result{Input: opts.Input, Output: opts.Output}

	if err := opts.Validate(); err != nil {
		return result, &Error{Kind: KindInvalid, Err: err}
	}

	c.logger.Debug("Composing logo from %s", opts.Input)

	// 1. Load
	data, err := c.fs.ReadFile(opts.Input)
	if err != nil {
		return result, &Error{Kind: KindInputNotFound, Path: opts.Input, Err: err}
	}
	source, err := c.renderer.DecodeImage(data)
	if err != nil {
		return result, &Error{Kind: KindDecode, Path: opts.Input, Err: err}
	}

	// 2. Resize and mask
	crop, err := c.cropStage.Execute(ctx, pipeline.CropInput{Source: source, Size: opts.Size})
	if err != nil {
		return result, err
	}

	// 3. Measure text
	font := c.fonts.Resolve(opts.FontPath, float64(opts.FontSize))
	result.Font = font
	tw, th := typeface.Measure(font.Face, opts.Text)
	result.Text = pipeline.Dimension{Width: tw, Height: th}
	c.logger.Debug("Measured text %q: %dx%d", opts.Text, tw, th)

	// 4. Layout
	layout, err := c.layoutStage.Execute(ctx, pipeline.LayoutInput{
		Image:    opts.Size,
		Text:     result.Text,
		Position: opts.Position,
	})
	if err != nil {
		return result, err
	}
	result.Layout = layout
	result.Canvas = layout.Canvas
	c.logger.Debug("Layout calculated: %dx%d canvas, text %s", layout.Canvas.Width, layout.Canvas.Height, layout.Position)

	if c.sink.Enabled() {
		if data, err := json.MarshalIndent(layout, "", "  "); err == nil {
			c.sink.SaveLayoutJSON(data)
		}
	}

	// 5. Draw
	canvas := c.renderer.CreateCanvas(layout.Canvas.Width, layout.Canvas.Height, color.Transparent)
	canvas.DrawImage(crop.Round, layout.ImageOrigin.X, layout.ImageOrigin.Y)
	canvas.DrawText(opts.Text, layout.TextOrigin.X, layout.TextOrigin.Y, ports.TextStyle{
		Face:  font.Face,
		Color: TextColor,
	})

	// 6. Save
	encoded, err := c.renderer.EncodePNG(canvas.ToImage())
	if err != nil {
		return result, &Error{Kind: KindWrite, Path: opts.Output, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	c.logger.Debug("Writing %d bytes to %s", len(encoded), opts.Output)
	if err := c.fs.WriteFile(opts.Output, encoded); err != nil {
		return result, &Error{Kind: KindWrite, Path: opts.Output, Err: err}
	}
	result.Bytes = len(encoded)

	return result, nil
}

// IsNotExist reports whether err is a KindInputNotFound caused by a missing file,
// as opposed to one that exists but cannot be opened.
func IsNotExist(err error) bool {
	return errors.Is(err, ErrInputNotFound) && errors.Is(err, iofs.ErrNotExist)
}
