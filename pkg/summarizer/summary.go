// Package summarizer provides summary generation for composed logos.
package summarizer

import (
	"time"

	"github.com/user/roundlogo/pkg/logo"
)

// Summary contains the data collected during one composition.
type Summary struct {
	GeneratedAt time.Time

	// Files
	Input  string
	Output string

	// Requested options
	Settings Settings

	// Produced image
	Result ResultInfo
}

// Settings contains the requested options.
type Settings struct {
	Text     string
	FontSize int
	FontPath string
	Position string
	Width    int
	Height   int
}

// ResultInfo contains what was actually produced.
type ResultInfo struct {
	CanvasWidth  int
	CanvasHeight int
	TextWidth    int
	TextHeight   int
	FontSource   string
	FileSize     int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithOptions records the requested options.
func (b *Builder) WithOptions(opts logo.Options) *Builder {
	b.summary.Input = opts.Input
	b.summary.Output = opts.Output
	b.summary.Settings = Settings{
		Text:     opts.Text,
		FontSize: opts.FontSize,
		FontPath: opts.FontPath,
		Position: opts.Position.String(),
		Width:    opts.Size.Width,
		Height:   opts.Size.Height,
	}
	return b
}

// WithResult records the composition result.
func (b *Builder) WithResult(result logo.Result) *Builder {
	b.summary.Result = ResultInfo{
		CanvasWidth:  result.Canvas.Width,
		CanvasHeight: result.Canvas.Height,
		TextWidth:    result.Text.Width,
		TextHeight:   result.Text.Height,
		FontSource:   result.Font.Source.String(),
		FileSize:     result.Bytes,
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
