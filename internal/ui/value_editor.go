package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"vardeck/internal/domain"
)

const valueEditorHeight = 6

// ValueEditor is the raw JSON text editor for a variable's value. It can
// swap the textarea for a highlighted preview of the parsed value.
type ValueEditor struct {
	area        textarea.Model
	previewing  bool
	width       int
	renderStyle string
}

// NewValueEditor returns an empty editor. renderStyle is a glamour standard
// style name ("dark", "light", "notty"), or "plain" to skip highlighting.
func NewValueEditor(width int, renderStyle string) ValueEditor {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.Placeholder = `{"key": "value"}`
	ta.CharLimit = 0
	e := ValueEditor{area: ta, renderStyle: renderStyle}
	e.SetWidth(width)
	return e
}

// SetWidth resizes the editor.
func (e *ValueEditor) SetWidth(w int) {
	e.width = max(w, 8)
	e.area.SetWidth(e.width)
	e.area.SetHeight(valueEditorHeight)
}

// Value returns the raw text.
func (e ValueEditor) Value() string {
	return e.area.Value()
}

// SetValue replaces the raw text and leaves preview mode.
func (e *ValueEditor) SetValue(v string) {
	e.area.SetValue(v)
	e.previewing = false
}

// Focus focuses the textarea.
func (e *ValueEditor) Focus() tea.Cmd {
	return e.area.Focus()
}

// Blur removes focus.
func (e *ValueEditor) Blur() {
	e.area.Blur()
}

// TogglePreview switches between editing and preview.
func (e *ValueEditor) TogglePreview() {
	e.previewing = !e.previewing
}

// Previewing reports whether the preview is shown.
func (e ValueEditor) Previewing() bool {
	return e.previewing
}

// Update forwards input to the textarea. Input is ignored while previewing.
func (e ValueEditor) Update(msg tea.Msg) (ValueEditor, tea.Cmd) {
	if e.previewing {
		return e, nil
	}
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e, cmd
}

// View renders the textarea or the preview.
func (e ValueEditor) View() string {
	if !e.previewing {
		return e.area.View()
	}
	return renderValuePreview(e.area.Value(), e.renderStyle, e.width)
}

// renderValuePreview pretty-prints raw as JSON inside a fenced code block
// rendered by glamour. Text that is not JSON yet is shown as typed.
func renderValuePreview(raw, style string, width int) string {
	v, err := domain.ParseValue(raw)
	if err != nil {
		return styleMuted().Render(wordwrap.String("(not valid JSON yet) "+strings.TrimSpace(raw), width))
	}
	pretty, err := domain.FormatValue(v)
	if err != nil {
		return wordwrap.String(raw, width)
	}
	return buildMarkdownRenderer(style, width)("```json\n" + pretty + "\n```")
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		input = strings.TrimPrefix(input, "```json\n")
		input = strings.TrimSuffix(input, "\n```")
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.Trim(out, "\n")
	}
}
