// Package swatch renders decoded color entries as terminal swatches.
package swatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go_aco/pkg/aco"
)

const blockWidth = 6

// Render writes one line per entry: a filled block in the entry's color, its hex
// value and its name. Color support is detected from the renderer's output.
func Render(w io.Writer, renderer *lipgloss.Renderer, colors []aco.ColorEntry) error {
	hexStyle := renderer.NewStyle().Faint(true).PaddingLeft(1).PaddingRight(1)
	nameStyle := renderer.NewStyle().Bold(true)

	var out strings.Builder
	for _, entry := range colors {
		block := renderer.NewStyle().
			Background(lipgloss.Color(entry.Color)).
			Render(strings.Repeat(" ", blockWidth))
		out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			block,
			hexStyle.Render(entry.Color),
			nameStyle.Render(entry.Name),
		))
		out.WriteByte('\n')
	}
	fmt.Fprintf(&out, "%d colors\n", len(colors))

	_, err := io.WriteString(w, out.String())
	return err
}
