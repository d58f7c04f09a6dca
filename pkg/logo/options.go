package logo

import (
	"errors"
	"fmt"

	"github.com/user/roundlogo/pkg/pipeline"
	"github.com/user/roundlogo/pkg/typeface"
)

// Options describes one logo to compose.
type Options struct {
	Input    string                // Path of the source raster image
	Output   string                // Path of the PNG to write
	Text     string                // Text drawn next to the circle
	FontSize int                   // Requested font size in points
	Position pipeline.TextPosition // Where the text goes
	Size     pipeline.Dimension    // Size the source is resized to
	FontPath string                // Bold font file tried before the built-in face
}

// DefaultOptions returns Options with the default text, font and size.
func DefaultOptions() Options {
	return Options{
		Text:     "My Logo",
		FontSize: 40,
		Position: pipeline.PositionBelow,
		Size:     pipeline.Dimension{Width: 200, Height: 200},
		FontPath: typeface.DefaultPath,
	}
}

// Validate checks the options that would make composition meaningless.
func (o Options) Validate() error {
	var errs []error
	if o.Input == "" {
		errs = append(errs, errors.New("input path is required"))
	}
	if o.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if o.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %d", o.FontSize))
	}
	if o.Size.Width <= 0 || o.Size.Height <= 0 {
		errs = append(errs, fmt.Errorf("resize dimension must be positive, got %dx%d", o.Size.Width, o.Size.Height))
	}
	return errors.Join(errs...)
}
