package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data of any supported raster format
	// and returns it with a guaranteed alpha channel.
	DecodeImage(data []byte) (*image.NRGBA, error)

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)

	// ResizeImage resamples an image to exactly width x height with a Lanczos filter.
	ResizeImage(img image.Image, width, height int) *image.NRGBA

	// CircleMask returns a binary single-channel mask: pixels whose centers
	// lie inside the ellipse inscribed in the full rectangle are 255 and every
	// other pixel is 0. No intermediate values are produced.
	CircleMask(width, height int) *image.Alpha
}

// Canvas provides drawing operations for compositing images.
type Canvas interface {
	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawText draws text with its line box's top-left corner at (x, y).
	DrawText(text string, x, y int, style TextStyle)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}
