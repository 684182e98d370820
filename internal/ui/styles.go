package ui

import (
	"github.com/charmbracelet/lipgloss"

	"vardeck/internal/ui/theme"
)

// Styles are functions so a theme switch takes effect on the next render.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextEmphasized()).
		Background(theme.Current().Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleHeaderInfo() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleName() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

func styleValuePreview() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text())
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Bold(true)
}

func styleFieldLabel() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true)
}

func styleFieldError() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Error())
}

func styleRootError() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Error()).
		Bold(true)
}

func styleChip() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		Background(theme.Current().BackgroundDarker()).
		Padding(0, 1)
}

func styleChipHighlight() lipgloss.Style {
	return styleChip().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().Background()).
		Bold(true)
}

func styleChipFlash() lipgloss.Style {
	return styleChip().
		Background(theme.Current().Warning()).
		Foreground(theme.Current().Background()).
		Bold(true)
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().Background()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleErrorToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Error()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Success()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}
