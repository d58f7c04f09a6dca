package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// MarkdownFormatter renders a Summary as Markdown tables.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Logo Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Files\n\n")
	writeTable(&b, [][2]string{
		{"Input", s.Input},
		{"Output", s.Output},
	})

	b.WriteString("## Settings\n\n")
	writeTable(&b, [][2]string{
		{"Text", s.Settings.Text},
		{"Font Size", fmt.Sprintf("%dpt", s.Settings.FontSize)},
		{"Font File", s.Settings.FontPath},
		{"Text Position", s.Settings.Position},
		{"Circle Size", fmt.Sprintf("%dx%d", s.Settings.Width, s.Settings.Height)},
	})

	b.WriteString("## Result\n\n")
	writeTable(&b, [][2]string{
		{"Canvas Size", fmt.Sprintf("%dx%d", s.Result.CanvasWidth, s.Result.CanvasHeight)},
		{"Text Size", fmt.Sprintf("%dx%d", s.Result.TextWidth, s.Result.TextHeight)},
		{"Font Source", s.Result.FontSource},
		{"File Size", formatBytes(s.Result.FileSize)},
	})

	return b.String()
}

func writeTable(b *strings.Builder, rows [][2]string) {
	b.WriteString("| Item | Value |\n")
	b.WriteString("|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", row[0], escapeCell(row[1]))
	}
	b.WriteString("\n")
}

// escapeCell keeps pipes and newlines in user text from breaking the table.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func formatBytes(n int) string {
	const kb = 1024
	if n < kb {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/kb)
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
