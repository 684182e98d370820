// Package theme provides the semantic color system for the vardeck UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps semantic roles to colors. Every method returns an
// AdaptiveColor so light and dark terminals both render legibly.
type Theme interface {
	Primary() lipgloss.AdaptiveColor   // focused borders, header background
	Secondary() lipgloss.AdaptiveColor // field labels
	Accent() lipgloss.AdaptiveColor    // titles, variable names

	Error() lipgloss.AdaptiveColor
	Warning() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor
	Info() lipgloss.AdaptiveColor

	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor
	TextEmphasized() lipgloss.AdaptiveColor

	Background() lipgloss.AdaptiveColor
	BackgroundSecondary() lipgloss.AdaptiveColor // selected rows, overlays
	BackgroundDarker() lipgloss.AdaptiveColor    // chips

	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}

// Palette is a Theme described as data. Each field holds a dark and light
// hex pair.
type Palette struct {
	PrimaryColor, SecondaryColor, AccentColor                 lipgloss.AdaptiveColor
	ErrorColor, WarningColor, SuccessColor, InfoColor         lipgloss.AdaptiveColor
	TextColor, TextMutedColor, TextEmphasizedColor            lipgloss.AdaptiveColor
	BackgroundColor, BackgroundSecondaryColor, BackgroundDark lipgloss.AdaptiveColor
	BorderNormalColor, BorderFocusedColor, BorderDimColor     lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor             { return p.PrimaryColor }
func (p Palette) Secondary() lipgloss.AdaptiveColor           { return p.SecondaryColor }
func (p Palette) Accent() lipgloss.AdaptiveColor              { return p.AccentColor }
func (p Palette) Error() lipgloss.AdaptiveColor               { return p.ErrorColor }
func (p Palette) Warning() lipgloss.AdaptiveColor             { return p.WarningColor }
func (p Palette) Success() lipgloss.AdaptiveColor             { return p.SuccessColor }
func (p Palette) Info() lipgloss.AdaptiveColor                { return p.InfoColor }
func (p Palette) Text() lipgloss.AdaptiveColor                { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor           { return p.TextMutedColor }
func (p Palette) TextEmphasized() lipgloss.AdaptiveColor      { return p.TextEmphasizedColor }
func (p Palette) Background() lipgloss.AdaptiveColor          { return p.BackgroundColor }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.BackgroundSecondaryColor }
func (p Palette) BackgroundDarker() lipgloss.AdaptiveColor    { return p.BackgroundDark }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor        { return p.BorderNormalColor }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor       { return p.BorderFocusedColor }
func (p Palette) BorderDim() lipgloss.AdaptiveColor           { return p.BorderDimColor }

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}
