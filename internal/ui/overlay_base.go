package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"vardeck/internal/ui/theme"
)

// Overlay widths
//
//   Style.Width(n)   sets the content width, padding included
//   Border           adds 2 outside of Width
//
// A box with Width(64), Padding(1,2) and a rounded border is 66 columns on
// screen with 60 usable columns inside. OverlayBuilder does this arithmetic.
const (
	OverlayWidthStandard = 48
	OverlayWidthWide     = 64

	overlayHPadding = 2
	overlayMaxWidth = 100
)

// OverlaySize selects an overlay width preset.
type OverlaySize int

const (
	OverlaySizeStandard OverlaySize = iota
	OverlaySizeWide
	OverlaySizeResponsive
)

// OverlayWidth returns the box width for a preset. Responsive overlays use
// 70% of the terminal, clamped to [OverlayWidthStandard, overlayMaxWidth].
func OverlayWidth(size OverlaySize, termWidth int) int {
	switch size {
	case OverlaySizeWide:
		return OverlayWidthWide
	case OverlaySizeResponsive:
		if termWidth <= 0 {
			return OverlayWidthWide
		}
		return min(max(termWidth*7/10, OverlayWidthStandard), overlayMaxWidth)
	default:
		return OverlayWidthStandard
	}
}

// OverlayContentWidth returns the usable width inside an overlay's padding.
func OverlayContentWidth(boxWidth int) int {
	return max(boxWidth-overlayHPadding*2, 1)
}

// OverlayBuilder assembles the header/body/footer of an overlay.
type OverlayBuilder struct {
	boxWidth     int
	contentWidth int
	lines        []string
}

// NewOverlayBuilder creates a builder for the given preset.
func NewOverlayBuilder(size OverlaySize, termWidth int) *OverlayBuilder {
	boxWidth := OverlayWidth(size, termWidth)
	return &OverlayBuilder{
		boxWidth:     boxWidth,
		contentWidth: OverlayContentWidth(boxWidth),
		lines:        make([]string, 0, 24),
	}
}

// BoxWidth returns the lipgloss Width of the overlay container.
func (b *OverlayBuilder) BoxWidth() int {
	return b.boxWidth
}

// ContentWidth returns the usable width for text content.
func (b *OverlayBuilder) ContentWidth() int {
	return b.contentWidth
}

// Header adds a title and a divider.
func (b *OverlayBuilder) Header(title string) *OverlayBuilder {
	b.lines = append(b.lines, styleOverlayTitle().Render(title), b.Divider(), "")
	return b
}

// Divider returns a horizontal rule spanning the content width.
func (b *OverlayBuilder) Divider() string {
	return styleOverlayDivider().Render(strings.Repeat("─", b.contentWidth))
}

// Line adds a content line.
func (b *OverlayBuilder) Line(content string) *OverlayBuilder {
	b.lines = append(b.lines, content)
	return b
}

// BlankLine adds an empty line.
func (b *OverlayBuilder) BlankLine() *OverlayBuilder {
	return b.Line("")
}

// Wrapped adds text word-wrapped to the content width, styled with style.
func (b *OverlayBuilder) Wrapped(text string, style lipgloss.Style) *OverlayBuilder {
	if text == "" {
		return b
	}
	for _, line := range strings.Split(wordwrap.String(text, b.contentWidth), "\n") {
		b.lines = append(b.lines, style.Render(line))
	}
	return b
}

// Field adds a labeled input block with an optional error message under it.
func (b *OverlayBuilder) Field(label, input, errMsg string) *OverlayBuilder {
	b.lines = append(b.lines, styleFieldLabel().Render(label), input)
	b.Wrapped(errMsg, styleFieldError())
	b.lines = append(b.lines, "")
	return b
}

// Footer adds a divider and centered key hints.
func (b *OverlayBuilder) Footer(hints []footerHint) *OverlayBuilder {
	b.lines = append(b.lines, b.Divider(), overlayFooterLine(hints, b.contentWidth))
	return b
}

// FooterText adds a divider and centered status text.
func (b *OverlayBuilder) FooterText(text string) *OverlayBuilder {
	centered := lipgloss.NewStyle().
		Width(b.contentWidth).
		Align(lipgloss.Center).
		Foreground(theme.Current().TextMuted()).
		Render(text)
	b.lines = append(b.lines, b.Divider(), centered)
	return b
}

// Build wraps the content in the overlay box.
func (b *OverlayBuilder) Build() string {
	return styleOverlay().Width(b.boxWidth).Render(strings.Join(b.lines, "\n"))
}

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Padding(1, overlayHPadding)
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

func styleOverlayDivider() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary())
}

// overlayInputStyle is the bordered box around a single dialog input.
func overlayInputStyle(contentWidth int, focused, invalid bool) lipgloss.Style {
	border := theme.Current().BorderDim()
	switch {
	case invalid:
		border = theme.Current().Error()
	case focused:
		border = theme.Current().BorderFocused()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(contentWidth - 2)
}

// inputInnerWidth is the text width available inside overlayInputStyle.
func inputInnerWidth(contentWidth int) int {
	return max(contentWidth-6, 1)
}
