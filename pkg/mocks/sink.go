package mocks

import (
	"image"
	"sync"

	"github.com/user/roundlogo/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Mask       image.Image
	Round      image.Image
	LayoutJSON []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveMask(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mask = img
	return nil
}

func (m *DebugSink) SaveRoundImage(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Round = img
	return nil
}

func (m *DebugSink) SaveLayoutJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutJSON = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
