// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/roundlogo/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveMask saves the circular mask as mask.png.
func (s *Sink) SaveMask(img image.Image) error {
	return s.savePNG("mask.png", img)
}

// SaveRoundImage saves the masked image as round.png.
func (s *Sink) SaveRoundImage(img image.Image) error {
	return s.savePNG("round.png", img)
}

// SaveLayoutJSON saves the layout calculation result as layout.json.
func (s *Sink) SaveLayoutJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "layout.json")
	return s.fs.WriteFile(path, data)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
