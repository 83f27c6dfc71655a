package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxModalW = 72

// modalBodyWidth is the content width inside a modal box for a given
// terminal width.
func modalBodyWidth(termW int) int {
	w := termW - 8
	if w > maxModalW {
		w = maxModalW
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox draws a titled surface for modal content. Borders are
// avoided: some terminals show background artifacts when nesting bordered
// components inside a background-colored modal.
func renderModalBox(termW int, title string, content string) string {
	bodyW := modalBodyWidth(termW)

	header := lipgloss.NewStyle().
		Width(bodyW+2).
		Padding(0, 1).
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(bodyW+2).
		Padding(1, 1).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// placeCentered centers a modal within the current terminal size.
func placeCentered(termW, termH int, box string) string {
	if termW <= 0 || termH <= 0 {
		return box
	}
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpLine renders a muted key-hint footer line.
func renderHelpLine(bodyW int, hint string) string {
	return styleMuted().Width(bodyW).Render(hint)
}

// joinModalLines assembles modal content with blank separators, skipping
// empty segments.
func joinModalLines(segments ...string) string {
	parts := segments[:0:0]
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}
