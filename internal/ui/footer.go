package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is a short key hint for a footer bar.
type footerHint struct {
	key  string
	desc string
}

var listFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"n", "New"},
	{"r", "Refresh"},
	{"y", "Copy"},
	{"t", "Theme"},
	{"q", "Quit"},
}

var dialogFooterHints = []footerHint{
	{"⇥", "Next field"},
	{"⏎", "Create"},
	{"^s", "Create"},
	{"^p", "Preview"},
	{"esc", "Cancel"},
}

// renderFooter renders the list footer with the backend label right-aligned.
func (m *App) renderFooter() string {
	right := styleKeyDesc().Render(m.backendLabel)
	rightWidth := lipgloss.Width(right)
	hints := trimHintsToFit(listFooterHints, m.width-rightWidth-2)
	left := renderHints(hints)

	spacing := m.width - lipgloss.Width(left) - rightWidth
	if spacing < 2 {
		spacing = 2
	}
	return left + strings.Repeat(" ", spacing) + right
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

func renderHints(hints []footerHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, "  ")
}

// trimHintsToFit drops hints from the end until the bar fits.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	for len(hints) > 0 && lipgloss.Width(renderHints(hints)) > availableWidth {
		hints = hints[:len(hints)-1]
	}
	return hints
}

// overlayFooterLine centers hints within an overlay's content width.
func overlayFooterLine(hints []footerHint, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(renderHints(trimHintsToFit(hints, width)))
}
