// Package ggrenderer provides a renderer implementation using the gg and imaging libraries.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/user/roundlogo/pkg/ports"
)

// Renderer implements ports.Renderer using gg for drawing and imaging for resampling.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// DecodeImage decodes JPEG, PNG, GIF, BMP or TIFF data into an NRGBA image.
func (r *Renderer) DecodeImage(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return imaging.Clone(img), nil
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// CircleMask builds a binary mask of the ellipse inscribed in a width x height
// rectangle. A pixel is 255 when its center lies inside the ellipse and 0
// otherwise; there is no antialiasing. The result is a circle only when
// width equals height.
func (r *Renderer) CircleMask(width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if insideEllipse(x, y, width, height) {
				mask.Pix[y*mask.Stride+x] = 0xff
			}
		}
	}
	return mask
}

// insideEllipse reports whether the center of pixel (x, y) lies inside the
// ellipse inscribed in a width x height rectangle.
func insideEllipse(x, y, width, height int) bool {
	rx := float64(width) / 2
	ry := float64(height) / 2
	dx := (float64(x) + 0.5 - rx) / rx
	dy := (float64(y) + 0.5 - ry) / ry
	return dx*dx+dy*dy <= 1
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawText draws text so that the top of its line box sits at y.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	if style.Face == nil || text == "" {
		return
	}
	c.dc.SetFontFace(style.Face)
	c.dc.SetColor(style.Color)

	baseline := y + style.Face.Metrics().Ascent.Ceil()
	c.dc.DrawString(text, float64(x), float64(baseline))
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
