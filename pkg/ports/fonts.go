package ports

import "golang.org/x/image/font"

// FontSource tells where a resolved face came from.
type FontSource int

const (
	// FontFromFile is a face loaded from the requested font file at the requested size.
	FontFromFile FontSource = iota
	// FontBuiltin is the fixed-size fallback face compiled into the binary.
	// It honors neither the requested size nor weight.
	FontBuiltin
)

// String returns the string representation of the font source.
func (s FontSource) String() string {
	switch s {
	case FontFromFile:
		return "file"
	case FontBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// ResolvedFont is the outcome of font resolution.
type ResolvedFont struct {
	Face   font.Face
	Source FontSource
	Path   string // Requested path, kept even when the fallback was used
}

// FontResolver resolves a font file into a face, never failing.
type FontResolver interface {
	// Resolve tries to load path at size points and falls back to a built-in face.
	Resolve(path string, size float64) ResolvedFont
}
