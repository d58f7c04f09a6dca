package config

import (
	"github.com/user/roundlogo/pkg/logo"
	"github.com/user/roundlogo/pkg/pipeline"
)

// Builder provides a fluent interface for building logo.Options.
type Builder struct {
	options logo.Options
}

// NewBuilder creates a new Builder with default options.
func NewBuilder() *Builder {
	return &Builder{options: logo.DefaultOptions()}
}

// NewBuilderFromConfig creates a new Builder seeded from a config file's values.
func NewBuilderFromConfig(cfg Config) *Builder {
	return &Builder{options: cfg.ToOptions()}
}

// WithInput sets the source image path.
func (b *Builder) WithInput(path string) *Builder {
	b.options.Input = path
	return b
}

// WithOutput sets the PNG output path.
func (b *Builder) WithOutput(path string) *Builder {
	b.options.Output = path
	return b
}

// WithText sets the logo text.
func (b *Builder) WithText(text string) *Builder {
	b.options.Text = text
	return b
}

// WithFontSize sets the requested font size in points.
func (b *Builder) WithFontSize(size int) *Builder {
	b.options.FontSize = size
	return b
}

// WithFontPath sets the bold font file to try.
func (b *Builder) WithFontPath(path string) *Builder {
	b.options.FontPath = path
	return b
}

// WithTextPosition sets the text position; see pipeline.ParseTextPosition.
func (b *Builder) WithTextPosition(position string) *Builder {
	b.options.Position = pipeline.ParseTextPosition(position)
	return b
}

// WithWidth sets the circle width.
func (b *Builder) WithWidth(width int) *Builder {
	b.options.Size.Width = width
	return b
}

// WithHeight sets the circle height.
func (b *Builder) WithHeight(height int) *Builder {
	b.options.Size.Height = height
	return b
}

// Build returns the constructed Options.
func (b *Builder) Build() logo.Options {
	return b.options
}
