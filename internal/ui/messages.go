package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vardeck/internal/domain"
	"vardeck/internal/form"
)

// variablesLoadedMsg carries the result of a List call.
type variablesLoadedMsg struct {
	vars []domain.Variable
	err  error
}

// variableCreateResultMsg carries the result of a Create call together with
// the ticket of the submit that started it.
type variableCreateResultMsg struct {
	ticket   form.Ticket
	variable domain.Variable
	err      error
}

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	id   int
	kind toastKind
	text string
}

// toastExpiredMsg hides the toast with the given id if it is still shown.
type toastExpiredMsg struct {
	id int
}

func scheduleToastExpiry(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
