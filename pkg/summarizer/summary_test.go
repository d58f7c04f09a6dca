package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/roundlogo/pkg/logo"
	"github.com/user/roundlogo/pkg/mocks"
	"github.com/user/roundlogo/pkg/pipeline"
	"github.com/user/roundlogo/pkg/ports"
)

func sampleSummary() *Summary {
	opts := logo.DefaultOptions()
	opts.Input = "me1.jpg"
	opts.Output = "logo.png"
	opts.Text = "DREX | Co"

	result := logo.Result{
		Canvas: pipeline.Dimension{Width: 200, Height: 233},
		Text:   pipeline.Dimension{Width: 27, Height: 13},
		Font:   ports.ResolvedFont{Source: ports.FontBuiltin},
		Bytes:  2048,
	}

	s := NewBuilder().WithOptions(opts).WithResult(result).Build()
	s.GeneratedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return s
}

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	s := sampleSummary()

	if s.Input != "me1.jpg" || s.Output != "logo.png" {
		t.Errorf("unexpected paths: %q %q", s.Input, s.Output)
	}
	if s.Settings.Position != "below" || s.Settings.Width != 200 {
		t.Errorf("unexpected settings: %+v", s.Settings)
	}
	if s.Result.CanvasHeight != 233 || s.Result.FontSource != "builtin" {
		t.Errorf("unexpected result: %+v", s.Result)
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out := NewMarkdownFormatter().Format(sampleSummary())

	for _, want := range []string{
		"2024-01-15T10:30:00Z",
		"| me1.jpg |",
		"| logo.png |",
		"| 200x233 |",
		"| 27x13 |",
		"| builtin |",
		"| 2.0 KB |",
		"| 40pt |",
		`DREX \| Co`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[int]string{
		0:    "0 B",
		1023: "1023 B",
		1536: "1.5 KB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) string { return "summary of " + s.Output })

	if err := NewWriter(formatter, fs).Write("out/summary.md", sampleSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("out/summary.md")
	if !ok {
		t.Fatal("expected summary file")
	}
	if string(data) != "summary of logo.png" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error { return errors.New("read-only") }

	err := NewWriter(NewMarkdownFormatter(), fs).Write("summary.md", sampleSummary())
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}
