package ui

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tagFlashDuration = 400 * time.Millisecond

// tagFlashClearMsg ends the duplicate-tag highlight.
type tagFlashClearMsg struct{}

// TagInput edits an ordered list of tags shown as chips. Enter or comma
// commits the typed text as a tag; backspace on an empty input removes the
// last tag, or the highlighted one after left/right navigation.
type TagInput struct {
	input      textinput.Model
	tags       []string
	navIndex   int // highlighted chip, -1 when typing
	flashIndex int // chip flashed as a duplicate, -1 for none
	width      int
}

// NewTagInput returns an empty tag input.
func NewTagInput(width int) TagInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "add tag, enter to commit"
	ti.CharLimit = 64
	t := TagInput{input: ti, navIndex: -1, flashIndex: -1}
	t.SetWidth(width)
	return t
}

// SetWidth sets the wrap width for chips and the input.
func (t *TagInput) SetWidth(w int) {
	t.width = max(w, 8)
	t.input.Width = t.width
}

// Tags returns a copy of the committed tags.
func (t TagInput) Tags() []string {
	return append([]string{}, t.tags...)
}

// SetTags replaces the tags and clears the typed text.
func (t *TagInput) SetTags(tags []string) {
	t.tags = append([]string{}, tags...)
	t.input.SetValue("")
	t.navIndex = -1
	t.flashIndex = -1
}

// Pending returns text typed but not yet committed.
func (t TagInput) Pending() string {
	return strings.TrimSpace(t.input.Value())
}

// Focus focuses the text input.
func (t *TagInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus and leaves navigation mode.
func (t *TagInput) Blur() {
	t.input.Blur()
	t.navIndex = -1
}

// Commit adds the pending text as a tag. It reports false when there was
// nothing to add; a duplicate flashes the existing chip instead.
func (t *TagInput) Commit() (bool, tea.Cmd) {
	tag := strings.Trim(t.Pending(), ",")
	tag = strings.TrimSpace(tag)
	if tag == "" {
		t.input.SetValue("")
		return false, nil
	}
	t.input.SetValue("")
	if i := slices.Index(t.tags, tag); i >= 0 {
		t.flashIndex = i
		return false, tea.Tick(tagFlashDuration, func(time.Time) tea.Msg { return tagFlashClearMsg{} })
	}
	t.tags = append(t.tags, tag)
	return true, nil
}

// Update handles keys while focused. changed reports whether Tags changed.
func (t TagInput) Update(msg tea.Msg) (TagInput, bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tagFlashClearMsg:
		t.flashIndex = -1
		return t, false, nil
	case tea.KeyMsg:
		if t.navIndex >= 0 {
			return t.updateNavigation(msg)
		}
		switch msg.Type {
		case tea.KeyEnter:
			changed, cmd := t.Commit()
			return t, changed, cmd
		case tea.KeyBackspace:
			if t.input.Value() == "" && len(t.tags) > 0 {
				t.tags = t.tags[:len(t.tags)-1]
				return t, true, nil
			}
		case tea.KeyLeft:
			if t.input.Position() == 0 && len(t.tags) > 0 {
				t.navIndex = len(t.tags) - 1
				return t, false, nil
			}
		case tea.KeyRunes:
			if string(msg.Runes) == "," {
				changed, cmd := t.Commit()
				return t, changed, cmd
			}
		}
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, false, cmd
}

func (t TagInput) updateNavigation(msg tea.KeyMsg) (TagInput, bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyLeft:
		if t.navIndex > 0 {
			t.navIndex--
		}
	case tea.KeyRight:
		if t.navIndex < len(t.tags)-1 {
			t.navIndex++
		} else {
			t.navIndex = -1
		}
	case tea.KeyBackspace, tea.KeyDelete:
		t.tags = slices.Delete(t.tags, t.navIndex, t.navIndex+1)
		if t.navIndex >= len(t.tags) {
			t.navIndex = len(t.tags) - 1
		}
		return t, true, nil
	default:
		t.navIndex = -1
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, false, cmd
	}
	return t, false, nil
}

// View renders the chips, wrapped to the width, followed by the input.
func (t TagInput) View() string {
	var rows []string
	var row []string
	rowWidth := 0
	for i, tag := range t.tags {
		style := styleChip()
		switch i {
		case t.navIndex:
			style = styleChipHighlight()
		case t.flashIndex:
			style = styleChipFlash()
		}
		chip := style.Render(tag)
		w := lipgloss.Width(chip) + 1
		if rowWidth+w > t.width && len(row) > 0 {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	rows = append(rows, t.input.View())
	return strings.Join(rows, "\n")
}
