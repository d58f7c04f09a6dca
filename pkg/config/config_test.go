package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/roundlogo/pkg/logo"
	"github.com/user/roundlogo/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults_MatchLogoDefaults(t *testing.T) {
	got := Defaults().ToOptions()
	want := logo.DefaultOptions()

	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
input: me1.jpg
output: logo.png
text: DREX
text_position: beside
width: 256
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	opts := cfg.ToOptions()
	if opts.Input != "me1.jpg" || opts.Output != "logo.png" {
		t.Errorf("unexpected paths: %q %q", opts.Input, opts.Output)
	}
	if opts.Text != "DREX" {
		t.Errorf("expected text DREX, got %q", opts.Text)
	}
	if opts.Position != pipeline.PositionBeside {
		t.Errorf("expected beside, got %v", opts.Position)
	}
	// Missing keys keep defaults.
	if opts.Size != (pipeline.Dimension{Width: 256, Height: 200}) {
		t.Errorf("expected 256x200, got %+v", opts.Size)
	}
	if opts.FontSize != 40 {
		t.Errorf("expected default font size, got %d", opts.FontSize)
	}
}

func TestLoadFromFile_UnknownPosition(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, "text_position: above\n"))
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.ToOptions().Position != pipeline.PositionBelow {
		t.Error("expected unknown position to mean below")
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFromFile(writeConfig(t, "width: [not, a, number]\n")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestBuilder(t *testing.T) {
	cfg := Defaults()
	cfg.Text = "from file"
	cfg.Width = 120

	opts := NewBuilderFromConfig(cfg).
		WithInput("in.jpg").
		WithOutput("out.png").
		WithText("DREX").
		WithFontSize(32).
		WithFontPath("bold.ttf").
		WithTextPosition("beside").
		WithHeight(80).
		Build()

	want := logo.Options{
		Input:    "in.jpg",
		Output:   "out.png",
		Text:     "DREX",
		FontSize: 32,
		Position: pipeline.PositionBeside,
		Size:     pipeline.Dimension{Width: 120, Height: 80},
		FontPath: "bold.ttf",
	}
	if opts != want {
		t.Errorf("expected %+v, got %+v", want, opts)
	}
}

func TestNewBuilder_Defaults(t *testing.T) {
	if got := NewBuilder().WithWidth(64).Build(); got.Size.Width != 64 || got.Text != "My Logo" {
		t.Errorf("unexpected options %+v", got)
	}
}
