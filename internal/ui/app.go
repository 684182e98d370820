// Package ui implements the vardeck terminal interface: a variable list
// hosting the create-variable dialog.
package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"vardeck/internal/config"
	"vardeck/internal/debug"
	"vardeck/internal/domain"
	"vardeck/internal/form"
	"vardeck/internal/ui/theme"
	"vardeck/internal/variables"
)

const (
	defaultListTimeout = 15 * time.Second
	toastDuration      = 4 * time.Second
)

// Test hooks.
var (
	clipboardWriteFunc = clipboard.WriteAll
	saveThemeFunc      = config.SaveTheme
)

// Config configures the UI application.
type Config struct {
	Client        variables.Client
	BackendLabel  string // shown in the footer, e.g. "api http://127.0.0.1:4200/api"
	Version       string
	Theme         string
	CreateTimeout time.Duration
	MarkdownStyle string // glamour style for the value preview
}

// App is the Bubble Tea model for vardeck. It owns the create dialog's open
// flag and passes it down; the dialog reports open/close requests back
// through its onOpenChange callback.
type App struct {
	client  variables.Client
	keys    KeyMap
	log     *zap.Logger
	version string

	vars    []domain.Variable
	cursor  int
	loading bool
	loadErr string

	createOpen bool
	dialog     *form.Dialog
	overlay    *CreateVariableOverlay

	toast    *toast
	toastSeq int

	backendLabel string
	width        int
	height       int

	queued []tea.Cmd
}

// NewApp builds the model. Variables load asynchronously from Init.
func NewApp(cfg Config) (*App, error) {
	if cfg.Client == nil {
		return nil, errors.New("ui: a variables client is required")
	}
	if cfg.Theme != "" && !theme.SetTheme(cfg.Theme) {
		theme.SetTheme(theme.DefaultName)
	}

	a := &App{
		client:       cfg.Client,
		keys:         DefaultKeyMap(),
		log:          debug.L().Named("ui"),
		version:      cfg.Version,
		backendLabel: cfg.BackendLabel,
		loading:      true,
	}
	a.dialog = form.NewDialog(false, a.onCreateOpenChange)
	a.overlay = NewCreateVariableOverlay(a.dialog, cfg.Client, cfg.CreateTimeout, cfg.MarkdownStyle)
	return a, nil
}

// onCreateOpenChange is the dialog's host callback. The flag lives here; the
// dialog only mirrors it.
func (a *App) onCreateOpenChange(open bool) {
	a.log.Debug("create dialog open change", zap.Bool("open", open))
	a.createOpen = open
	a.dialog.SetOpen(open)
	a.queued = append(a.queued, a.overlay.Sync())
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadVariablesCmd())
}

func (a *App) loadVariablesCmd() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), defaultListTimeout)
		defer cancel()
		vars, err := client.List(ctx)
		return variablesLoadedMsg{vars: vars, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if len(a.queued) > 0 {
		cmd = tea.Batch(append(a.queued, cmd)...)
		a.queued = nil
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.overlay.SetSize(msg.Width)
		return nil

	case variablesLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.loadErr = form.RemoteMessage(msg.err)
			a.log.Debug("list failed", zap.Error(msg.err))
			return a.showToast(toastError, "Could not load variables: "+a.loadErr)
		}
		a.loadErr = ""
		a.vars = msg.vars
		a.cursor = min(a.cursor, max(len(a.vars)-1, 0))
		return nil

	case variableCreateResultMsg:
		return a.handleCreateResult(msg)

	case toastExpiredMsg:
		if a.toast != nil && a.toast.id == msg.id {
			a.toast = nil
		}
		return nil

	case tea.KeyMsg:
		if a.createOpen {
			if key.Matches(msg, a.overlay.keys.ForceQuit) {
				return tea.Quit
			}
			return a.overlay.Update(msg)
		}
		return a.handleListKey(msg)
	}

	if a.createOpen {
		return a.overlay.Update(msg)
	}
	return nil
}

func (a *App) handleCreateResult(msg variableCreateResultMsg) tea.Cmd {
	outcome := a.dialog.Resolve(msg.ticket, msg.err)
	a.log.Debug("create resolved", zap.Stringer("outcome", outcome), zap.String("name", msg.ticket.Request.Name))

	switch outcome {
	case form.OutcomeCreated:
		return tea.Batch(
			a.showToast(toastSuccess, fmt.Sprintf("Created variable %s", msg.variable.Name)),
			a.loadVariablesCmd(),
		)
	case form.OutcomeDiscarded:
		// The dialog was closed while the call was running. A successful
		// create still changed the backend, so the list is reloaded.
		if msg.err == nil {
			return a.loadVariablesCmd()
		}
	}
	return nil
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.vars)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.New):
		a.dialog.Open()
	case key.Matches(msg, a.keys.Refresh):
		a.loading = true
		return a.loadVariablesCmd()
	case key.Matches(msg, a.keys.Copy):
		return a.copySelected()
	case key.Matches(msg, a.keys.Theme):
		name := theme.CycleTheme()
		if err := saveThemeFunc(name); err != nil {
			a.log.Debug("save theme failed", zap.Error(err))
		}
		return a.showToast(toastSuccess, "Theme: "+name)
	}
	return nil
}

func (a *App) copySelected() tea.Cmd {
	v, ok := a.selected()
	if !ok {
		return nil
	}
	if err := clipboardWriteFunc(v.Name); err != nil {
		return a.showToast(toastError, "Copy failed: "+err.Error())
	}
	return a.showToast(toastSuccess, fmt.Sprintf("Copied '%s' to clipboard.", v.Name))
}

func (a *App) selected() (domain.Variable, bool) {
	if a.cursor < 0 || a.cursor >= len(a.vars) {
		return domain.Variable{}, false
	}
	return a.vars[a.cursor], true
}

func (a *App) showToast(kind toastKind, text string) tea.Cmd {
	a.toastSeq++
	a.toast = &toast{id: a.toastSeq, kind: kind, text: text}
	return scheduleToastExpiry(a.toastSeq, toastDuration)
}
