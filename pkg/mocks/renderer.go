package mocks

import (
	"image"
	"image/color"

	"github.com/user/roundlogo/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (*image.NRGBA, error)
	EncodePNGFunc    func(img image.Image) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) *image.NRGBA
	CircleMaskFunc   func(width, height int) *image.Alpha

	// Recorded calls for verification
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{Width: width, Height: height}
	m.Canvases = append(m.Canvases, c)
	return c
}

func (m *Renderer) DecodeImage(data []byte) (*image.NRGBA, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewNRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("png"), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) *image.NRGBA {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) CircleMask(width, height int) *image.Alpha {
	if m.CircleMaskFunc != nil {
		return m.CircleMaskFunc(width, height)
	}
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	return mask
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that records draw calls.
type Canvas struct {
	Width  int
	Height int

	Images []DrawImageCall
	Texts  []DrawTextCall
}

// DrawImageCall records a call to DrawImage.
type DrawImageCall struct {
	Image image.Image
	X, Y  int
}

// DrawTextCall records a call to DrawText.
type DrawTextCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.Images = append(m.Images, DrawImageCall{Image: img, X: x, Y: y})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, DrawTextCall{Text: text, X: x, Y: y, Style: style})
}

func (m *Canvas) ToImage() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
