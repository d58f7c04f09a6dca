package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveMask saves the circular mask.
	SaveMask(img image.Image) error

	// SaveRoundImage saves the masked, resized source image.
	SaveRoundImage(img image.Image) error

	// SaveLayoutJSON saves the layout calculation result as JSON.
	SaveLayoutJSON(data []byte) error
}
