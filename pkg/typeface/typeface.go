// Package typeface resolves the text face and measures strings for layout.
package typeface

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/roundlogo/pkg/ports"
)

// DefaultPath is the bold face tried when no font path is configured.
const DefaultPath = "arialbd.ttf"

// LoadFunc loads a TrueType face from path at the given point size.
type LoadFunc func(path string, points float64) (font.Face, error)

// Resolver implements ports.FontResolver.
// It makes exactly one attempt at the named file and otherwise returns
// basicfont.Face7x13, which ignores the requested size and weight.
type Resolver struct {
	load   LoadFunc
	logger ports.Logger
}

// New creates a Resolver that loads fonts with gg.
func New(logger ports.Logger) *Resolver {
	return NewWithLoader(gg.LoadFontFace, logger)
}

// NewWithLoader creates a Resolver with a custom loader.
func NewWithLoader(load LoadFunc, logger ports.Logger) *Resolver {
	return &Resolver{
		load:   load,
		logger: logger.WithComponent("typeface"),
	}
}

// Resolve returns the face for path at size, falling back to the built-in face.
func (r *Resolver) Resolve(path string, size float64) ports.ResolvedFont {
	if path == "" {
		path = DefaultPath
	}

	face, err := r.load(path, size)
	if err == nil && face != nil {
		r.logger.Debug("Loaded font %s at %.0fpt", path, size)
		return ports.ResolvedFont{Face: face, Source: ports.FontFromFile, Path: path}
	}

	r.logger.Warn("Font %s unavailable, using built-in font", path)
	return ports.ResolvedFont{Face: basicfont.Face7x13, Source: ports.FontBuiltin, Path: path}
}

// Ensure Resolver implements ports.FontResolver
var _ ports.FontResolver = (*Resolver)(nil)

// Measure returns the far corner of the text's bounding box, measured from
// the top-left of the line box (the ascender line at the left edge).
//
// Width is the box's max X and height its max Y; neither subtracts the
// box's min corner, so glyphs with a left bearing or text without
// ascenders still report the full offset from the origin.
func Measure(face font.Face, text string) (width, height int) {
	if face == nil || text == "" {
		return 0, 0
	}
	bounds, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent
	return bounds.Max.X.Ceil(), (bounds.Max.Y + ascent).Ceil()
}
