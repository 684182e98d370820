package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"vardeck/internal/debug"
	"vardeck/internal/domain"
	"vardeck/internal/form"
)

const defaultCreateTimeout = 15 * time.Second

type createField int

const (
	createFieldName createField = iota
	createFieldValue
	createFieldTags
	createFieldCount
)

func (f createField) formField() domain.Field {
	switch f {
	case createFieldValue:
		return domain.FieldValue
	case createFieldTags:
		return domain.FieldTags
	default:
		return domain.FieldName
	}
}

// CreateVariableOverlay renders a form.Dialog and feeds it the edits made in
// its widgets. Submitting starts the create call as a tea.Cmd.
type CreateVariableOverlay struct {
	dialog  *form.Dialog
	creator form.Creator
	timeout time.Duration
	keys    DialogKeyMap

	name  textinput.Model
	value ValueEditor
	tags  TagInput
	focus createField

	termWidth int
	log       *zap.Logger
}

// NewCreateVariableOverlay binds an overlay to dialog. Create calls go to
// creator and are bounded by timeout.
func NewCreateVariableOverlay(dialog *form.Dialog, creator form.Creator, timeout time.Duration, renderStyle string) *CreateVariableOverlay {
	if timeout <= 0 {
		timeout = defaultCreateTimeout
	}
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "variable_name"
	name.CharLimit = 255

	o := &CreateVariableOverlay{
		dialog:  dialog,
		creator: creator,
		timeout: timeout,
		keys:    DefaultDialogKeyMap(),
		name:    name,
		value:   NewValueEditor(OverlayWidthWide, renderStyle),
		tags:    NewTagInput(OverlayWidthWide),
		log:     debug.L().Named("ui.create"),
	}
	o.SetSize(0)
	return o
}

// SetSize adapts the widgets to the terminal width.
func (o *CreateVariableOverlay) SetSize(termWidth int) {
	o.termWidth = termWidth
	inner := inputInnerWidth(OverlayContentWidth(OverlayWidth(OverlaySizeResponsive, termWidth)))
	o.name.Width = inner
	o.value.SetWidth(inner)
	o.tags.SetWidth(inner)
}

// Sync copies the dialog's draft into the widgets and focuses the name
// field. The host calls it whenever the dialog opens or resets.
func (o *CreateVariableOverlay) Sync() tea.Cmd {
	state := o.dialog.State()
	o.name.SetValue(state.Name)
	o.value.SetValue(state.Value)
	o.tags.SetTags(state.Tags)
	return o.setFocus(createFieldName)
}

func (o *CreateVariableOverlay) setFocus(f createField) tea.Cmd {
	o.focus = f
	o.name.Blur()
	o.value.Blur()
	o.tags.Blur()
	switch f {
	case createFieldValue:
		return o.value.Focus()
	case createFieldTags:
		return o.tags.Focus()
	default:
		return o.name.Focus()
	}
}

// pushEdits reports the widget contents to the dialog.
func (o *CreateVariableOverlay) pushEdits() {
	o.dialog.SetName(o.name.Value())
	o.dialog.SetValue(o.value.Value())
	o.dialog.SetTags(o.tags.Tags())
}

// Update handles input while the dialog is open.
func (o *CreateVariableOverlay) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blinks go to the focused widget; chip flashes to the tags.
		var cmds [2]tea.Cmd
		o.tags, _, cmds[0] = o.tags.Update(msg)
		switch o.focus {
		case createFieldName:
			o.name, cmds[1] = o.name.Update(msg)
		case createFieldValue:
			o.value, cmds[1] = o.value.Update(msg)
		}
		return tea.Batch(cmds[:]...)
	}

	if key.Matches(keyMsg, o.keys.Cancel) {
		o.log.Debug("dialog canceled", zap.Bool("pending", o.dialog.Pending()))
		o.dialog.Close()
		return nil
	}
	if o.dialog.Pending() {
		return nil
	}

	switch {
	case key.Matches(keyMsg, o.keys.SubmitAny):
		return o.submit()
	case key.Matches(keyMsg, o.keys.NextField):
		return o.setFocus((o.focus + 1) % createFieldCount)
	case key.Matches(keyMsg, o.keys.PrevField):
		return o.setFocus((o.focus + createFieldCount - 1) % createFieldCount)
	case key.Matches(keyMsg, o.keys.Preview):
		o.value.TogglePreview()
		return nil
	case key.Matches(keyMsg, o.keys.Submit) && o.focus == createFieldName:
		return o.submit()
	case key.Matches(keyMsg, o.keys.Submit) && o.focus == createFieldTags && o.tags.Pending() == "":
		return o.submit()
	}

	var cmd tea.Cmd
	switch o.focus {
	case createFieldName:
		o.name, cmd = o.name.Update(msg)
	case createFieldValue:
		o.value, cmd = o.value.Update(msg)
	case createFieldTags:
		o.tags, _, cmd = o.tags.Update(msg)
	}
	o.pushEdits()
	return cmd
}

// submit commits any half-typed tag, submits the dialog and, when it starts
// a create, returns the command performing it.
func (o *CreateVariableOverlay) submit() tea.Cmd {
	if o.tags.Pending() != "" {
		o.tags.Commit()
	}
	o.pushEdits()

	ticket, ok := o.dialog.Submit()
	if !ok {
		if fe := o.dialog.Errors().Fields(); len(fe) > 0 {
			for f := createFieldName; f < createFieldCount; f++ {
				if f.formField() == fe[0].Field {
					return o.setFocus(f)
				}
			}
		}
		return nil
	}
	return o.createCmd(ticket)
}

func (o *CreateVariableOverlay) createCmd(ticket form.Ticket) tea.Cmd {
	creator, timeout := o.creator, o.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		v, err := creator.Create(ctx, ticket.Request)
		return variableCreateResultMsg{ticket: ticket, variable: v, err: err}
	}
}

// View renders the dialog.
func (o *CreateVariableOverlay) View() string {
	b := NewOverlayBuilder(OverlaySizeResponsive, o.termWidth)
	cw := b.ContentWidth()
	errs := o.dialog.Errors()

	b.Header("New variable")
	if root := errs.Root(); root != "" {
		b.Wrapped("✗ "+root, styleRootError()).BlankLine()
	}

	fields := []struct {
		label string
		field createField
		view  string
	}{
		{"NAME", createFieldName, o.name.View()},
		{"VALUE (JSON)", createFieldValue, o.value.View()},
		{"TAGS", createFieldTags, o.tags.View()},
	}
	for _, f := range fields {
		msg := errs.Field(f.field.formField())
		box := overlayInputStyle(cw, o.focus == f.field, msg != "").Render(f.view)
		b.Field(f.label, box, msg)
	}

	if o.dialog.Pending() {
		b.FooterText("Creating variable...")
	} else {
		b.Footer(dialogFooterHints)
	}
	return b.Build()
}
