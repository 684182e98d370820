package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"vardeck/internal/domain"
)

const (
	headerHeight = 1
	footerHeight = 1
	minNameWidth = 8
	maxNameWidth = 32
)

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	height := a.height
	if height <= 0 {
		height = 24
	}

	bodyHeight := max(height-headerHeight-footerHeight, 1)
	body := lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(a.renderList(width, bodyHeight))
	base := lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(width), body, a.renderFooter())

	var layers []func(*canvas)
	if a.createOpen {
		dialog := a.overlay.View()
		layers = append(layers, func(c *canvas) {
			c.drawCentered(dialog, headerHeight, footerHeight)
		})
	}
	if a.toast != nil {
		box := a.renderToast()
		layers = append(layers, func(c *canvas) {
			c.drawBottomRight(box, footerHeight+1)
		})
	}
	return layerView(base, width, height, layers...)
}

func (a *App) renderHeader(width int) string {
	title := styleAppHeader().Render("vardeck")
	var info string
	switch {
	case a.loading:
		info = "loading..."
	case a.loadErr != "":
		info = "load failed"
	default:
		info = fmt.Sprintf("%d variables", len(a.vars))
	}
	if a.version != "" {
		info += " · " + a.version
	}
	line := title + " " + styleHeaderInfo().Render(info)
	return ansi.Truncate(line, width, "…")
}

func (a *App) renderList(width, height int) string {
	if a.loadErr != "" && len(a.vars) == 0 {
		return styleFieldError().Render("  " + a.loadErr)
	}
	if len(a.vars) == 0 {
		if a.loading {
			return styleMuted().Render("  Loading variables...")
		}
		return styleMuted().Render("  No variables yet. Press n to create one.")
	}

	nameWidth := minNameWidth
	for _, v := range a.vars {
		nameWidth = max(nameWidth, lipgloss.Width(v.Name))
	}
	nameWidth = min(nameWidth, maxNameWidth)

	// Keep the cursor visible.
	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	end := min(start+height, len(a.vars))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, a.renderRow(a.vars[i], i == a.cursor, nameWidth, width))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderRow(v domain.Variable, selected bool, nameWidth, width int) string {
	marker := "  "
	if selected {
		marker = "› "
	}
	name := styleName().Width(nameWidth).Render(ansi.Truncate(v.Name, nameWidth, "…"))

	var tags string
	if len(v.Tags) > 0 {
		chips := make([]string, 0, len(v.Tags))
		for _, t := range v.Tags {
			chips = append(chips, styleChip().Render(t))
		}
		tags = " " + strings.Join(chips, " ")
	}

	age := styleMuted().Width(ageWidth).Align(lipgloss.Right).Render(formatAge(lastChanged(v.Updated, v.Created)))

	valueWidth := max(width-lipgloss.Width(marker)-nameWidth-ageWidth-lipgloss.Width(tags)-4, 8)
	value := styleValuePreview().Render(ansi.Truncate(valuePreview(v.Value), valueWidth, "…"))

	row := marker + name + "  " + lipgloss.NewStyle().Width(valueWidth).Render(value) + "  " + age + tags
	row = ansi.Truncate(row, width, "")
	if selected {
		return styleSelectedRow().Width(width).Render(row)
	}
	return row
}

// valuePreview renders a value as compact single-line JSON.
func valuePreview(v domain.JSONValue) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func (a *App) renderToast() string {
	style := styleSuccessToast()
	prefix := "✓ "
	if a.toast.kind == toastError {
		style = styleErrorToast()
		prefix = "⚠ "
	}
	return style.Render(prefix + ansi.Truncate(a.toast.text, 60, "…"))
}
