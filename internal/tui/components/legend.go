// Package components provides shared UI components for the TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/mattn/go-runewidth"
)

// Category colours, from cool to hot.
var categoryColors = map[bmi.Category]lipgloss.Color{
	bmi.Underweight: lipgloss.Color("#4ecdc4"),
	bmi.Normal:      lipgloss.Color("#a8e6cf"),
	bmi.Overweight:  lipgloss.Color("#ffe66d"),
	bmi.Obese:       lipgloss.Color("#ff6b6b"),
}

var legendMutedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666666"))

const legendMarker = "> "

// CategoryColor returns the display colour for a category.
func CategoryColor(c bmi.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return lipgloss.Color("#f1faee")
}

// CategoryStyle returns a bold style in the category's colour.
func CategoryStyle(c bmi.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(CategoryColor(c)).
		Bold(true)
}

// Legend renders the four categories with their BMI ranges, one per line.
// The active category is marked and coloured; the rest are muted.
// An empty active category marks nothing and colours every row.
func Legend(active bmi.Category) string {
	var b strings.Builder

	for i, c := range bmi.Categories() {
		if i > 0 {
			b.WriteString("\n")
		}

		marker := strings.Repeat(" ", runewidth.StringWidth(legendMarker))
		if c == active {
			marker = legendMarker
		}
		row := marker + runewidth.FillRight(string(c), 13) + c.Range()

		switch {
		case active == "" || c == active:
			b.WriteString(CategoryStyle(c).Render(row))
		default:
			b.WriteString(legendMutedStyle.Render(row))
		}
	}

	return b.String()
}
