// Package crop implements the circular crop stage.
package crop

import (
	"context"
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/roundlogo/pkg/pipeline"
	"github.com/user/roundlogo/pkg/ports"
)

// ErrNoSource is returned when the input has no source image.
var ErrNoSource = errors.New("crop: no source image")

// Stage resizes the source and cuts it to the inscribed ellipse.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new crop stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("crop"),
	}
}

// Execute resamples the source to input.Size and composites it onto a
// transparent buffer through a circular mask of the same size.
func (s *Stage) Execute(ctx context.Context, input pipeline.CropInput) (pipeline.CropResult, error) {
	result := pipeline.CropResult{}

	if input.Source == nil {
		return result, ErrNoSource
	}
	w, h := input.Size.Width, input.Size.Height
	if w <= 0 || h <= 0 {
		return result, fmt.Errorf("crop: invalid size %dx%d", w, h)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	src := input.Source.Bounds()
	s.logger.Debug("Resizing %dx%d image to %dx%d", src.Dx(), src.Dy(), w, h)
	result.Resized = s.renderer.ResizeImage(input.Source, w, h)

	s.logger.Debug("Applying circular mask")
	result.Mask = s.renderer.CircleMask(w, h)

	// Masked pixels are copied as-is, the rest stay transparent.
	result.Round = image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(result.Round, result.Round.Bounds(),
		result.Resized, result.Resized.Bounds().Min,
		result.Mask, result.Mask.Bounds().Min,
		draw.Src)

	if s.sink.Enabled() {
		s.sink.SaveMask(result.Mask)
		s.sink.SaveRoundImage(result.Round)
	}

	return result, nil
}
