package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/roundlogo/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveLayoutJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte(`{"canvas":{"width":200,"height":233}}`)
	if err := sink.SaveLayoutJSON(data); err != nil {
		t.Fatalf("SaveLayoutJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "layout.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveImages(t *testing.T) {
	fs := mocks.NewFileSystem()
	var encoded []image.Image
	renderer := &mocks.Renderer{
		EncodePNGFunc: func(img image.Image) ([]byte, error) {
			encoded = append(encoded, img)
			return []byte{0x89, 'P', 'N', 'G'}, nil
		},
	}
	sink := New(testBaseDir, fs, renderer)

	mask := image.NewAlpha(image.Rect(0, 0, 10, 10))
	round := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	if err := sink.SaveMask(mask); err != nil {
		t.Fatalf("SaveMask failed: %v", err)
	}
	if err := sink.SaveRoundImage(round); err != nil {
		t.Fatalf("SaveRoundImage failed: %v", err)
	}

	for _, name := range []string{"mask.png", "round.png"} {
		if _, ok := fs.GetFile(filepath.Join(testBaseDir, name)); !ok {
			t.Errorf("expected %s to be saved", name)
		}
	}
	if len(encoded) != 2 || encoded[0] != image.Image(mask) || encoded[1] != image.Image(round) {
		t.Errorf("expected mask then round to be encoded, got %d images", len(encoded))
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodePNGFunc: func(img image.Image) ([]byte, error) {
			return nil, errors.New("encode failed")
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveMask(image.NewAlpha(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error")
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "mask.png")); ok {
		t.Error("expected no file on encode error")
	}
}
