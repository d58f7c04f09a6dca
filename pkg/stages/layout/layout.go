// Package layout implements the final canvas layout stage.
package layout

import (
	"context"

	"github.com/user/roundlogo/pkg/pipeline"
)

// Stage calculates where the circle and the text go on the final canvas.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute calculates the layout based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	return ComputeLayout(input), nil
}

// ComputeLayout performs the layout calculation.
// This is exposed as a standalone function for testing and reuse.
//
// Beside: the canvas grows horizontally by text width plus LayoutGap and both
// parts are centered vertically; the text starts TextOffset pixels right of
// the circle.
//
// Below (any other position): the canvas grows vertically by text height
// plus LayoutGap and both parts are centered horizontally; the text starts
// TextOffset pixels under the circle.
//
// Centering offsets use integer division and round toward zero.
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutResult {
	img := input.Image
	text := input.Text

	result := pipeline.LayoutResult{
		Position: input.Position,
		Image:    img,
		Text:     text,
	}

	if input.Position == pipeline.PositionBeside {
		width := img.Width + text.Width + pipeline.LayoutGap
		height := max(img.Height, text.Height)

		result.Canvas = pipeline.Dimension{Width: width, Height: height}
		result.ImageOrigin = pipeline.Point{X: 0, Y: (height - img.Height) / 2}
		result.TextOrigin = pipeline.Point{
			X: img.Width + pipeline.TextOffset,
			Y: (height - text.Height) / 2,
		}
		return result
	}

	width := max(img.Width, text.Width)
	height := img.Height + text.Height + pipeline.LayoutGap

	result.Canvas = pipeline.Dimension{Width: width, Height: height}
	result.ImageOrigin = pipeline.Point{X: (width - img.Width) / 2, Y: 0}
	result.TextOrigin = pipeline.Point{
		X: (width - text.Width) / 2,
		Y: img.Height + pipeline.TextOffset,
	}
	return result
}
