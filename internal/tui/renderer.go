package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style adapts to the detected terminal background.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Heading styles a section title for terminal output, degrading to plain
// text on terminals without color support.
func Heading(text string) string {
	p := termenv.ColorProfile()
	return termenv.String(text).Foreground(p.Color("#818cf8")).Bold().String()
}
