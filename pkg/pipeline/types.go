package pipeline

import (
	"image"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Point is a pixel position on the final canvas.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TextPosition selects where the text goes relative to the circle.
type TextPosition int

const (
	// PositionBelow stacks the text under the circle, horizontally centered.
	PositionBelow TextPosition = iota
	// PositionBeside puts the text to the right of the circle, vertically centered.
	PositionBeside
)

// String returns the string representation of the text position.
func (p TextPosition) String() string {
	if p == PositionBeside {
		return "beside"
	}
	return "below"
}

// MarshalText implements encoding.TextMarshaler.
func (p TextPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParseTextPosition maps "beside" to PositionBeside.
// Every other value, including the empty string, means PositionBelow.
func ParseTextPosition(s string) TextPosition {
	if s == "beside" {
		return PositionBeside
	}
	return PositionBelow
}

// =============================================================================
// Crop Stage Types
// =============================================================================

// CropInput contains the decoded source and the target size of the circle.
type CropInput struct {
	Source image.Image
	Size   Dimension
}

// CropResult contains the intermediate and final buffers of the crop.
type CropResult struct {
	// Resized is the source resampled to exactly Size.
	Resized *image.NRGBA

	// Mask is the single-channel stencil with the inscribed ellipse opaque.
	Mask *image.Alpha

	// Round holds only the masked pixels on a transparent background.
	Round *image.NRGBA
}

// =============================================================================
// Layout Stage Types
// =============================================================================

const (
	// LayoutGap is the extra space added along the stacking axis.
	LayoutGap = 20
	// TextOffset is the distance between the circle edge and the text box.
	TextOffset = 10
)

// LayoutInput contains the measured sizes to arrange.
type LayoutInput struct {
	Image    Dimension    // Size of the round image
	Text     Dimension    // Measured text size
	Position TextPosition // Where the text goes
}

// LayoutResult contains the final canvas size and the origins of its parts.
type LayoutResult struct {
	Position    TextPosition `json:"position"`
	Canvas      Dimension    `json:"canvas"`
	Image       Dimension    `json:"image"`
	Text        Dimension    `json:"text"`
	ImageOrigin Point        `json:"image_origin"`
	TextOrigin  Point        `json:"text_origin"`
}
