package form

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"vardeck/internal/debug"
	"vardeck/internal/domain"
)

// Outcome reports what happened to a submit.
type Outcome int

const (
	// OutcomeRejected: nothing was sent (validation failed or a create is already pending).
	OutcomeRejected Outcome = iota
	// OutcomeCreated: the backend accepted the request; the dialog reset and closed.
	OutcomeCreated
	// OutcomeFailed: the backend returned an error; it is shown as the root error.
	OutcomeFailed
	// OutcomeDiscarded: the result arrived after the dialog closed and was dropped.
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeFailed:
		return "failed"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "rejected"
	}
}

// Ticket identifies one in-flight create call. It must be handed back to
// Resolve together with the call's result.
type Ticket struct {
	Request domain.CreateRequest
	session uint64
}

// Dialog is the create-variable dialog: the open/closed lifecycle, the draft
// being edited, its error surface and its submission controller.
//
// The open flag is owned by the host. Close and a successful submit reset the
// draft and then report the close through onOpenChange; the host is expected
// to pass the new flag back with SetOpen. Without an onOpenChange callback the
// dialog tracks the flag itself.
type Dialog struct {
	open         bool
	session      uint64
	state        domain.FormState
	errs         Errors
	ctrl         *Controller
	submitted    bool
	onOpenChange func(open bool)
	log          *zap.Logger
}

// NewDialog returns a dialog in the given initial state.
func NewDialog(open bool, onOpenChange func(open bool)) *Dialog {
	d := &Dialog{
		onOpenChange: onOpenChange,
		log:          debug.L().Named("dialog"),
	}
	d.reset()
	d.open = open
	return d
}

// IsOpen reports whether the dialog is open.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// SetOpen applies the host's open flag. Every transition starts a new
// session with a default draft, so results of earlier submits are dropped.
func (d *Dialog) SetOpen(open bool) {
	if d.open == open {
		return
	}
	d.reset()
	d.open = open
	d.log.Debug("open changed", zap.Bool("open", open), zap.Uint64("session", d.session))
}

// Open asks the host to open the dialog.
func (d *Dialog) Open() {
	if d.open {
		return
	}
	d.notify(true)
}

// Close discards the draft and asks the host to close the dialog.
func (d *Dialog) Close() {
	d.reset()
	d.notify(false)
}

func (d *Dialog) notify(open bool) {
	if d.onOpenChange == nil {
		d.SetOpen(open)
		return
	}
	d.onOpenChange(open)
}

func (d *Dialog) reset() {
	d.session++
	d.state = domain.DefaultFormState()
	d.errs.reset()
	d.ctrl = NewController(&d.errs)
	d.submitted = false
}

// State returns a copy of the current draft.
func (d *Dialog) State() domain.FormState {
	return d.state.Clone()
}

// Errors returns the dialog's error surface.
func (d *Dialog) Errors() *Errors {
	return &d.errs
}

// Status returns the submission status.
func (d *Dialog) Status() Status {
	return d.ctrl.Status()
}

// Pending reports whether a create call is in flight.
func (d *Dialog) Pending() bool {
	return d.ctrl.Status() == StatusPending
}

// SetName records an edit of the name field.
func (d *Dialog) SetName(name string) {
	if d.state.Name == name {
		return
	}
	d.state.Name = name
	d.revalidate(domain.FieldName)
}

// SetValue records an edit of the raw value text.
func (d *Dialog) SetValue(value string) {
	if d.state.Value == value {
		return
	}
	d.state.Value = value
	d.revalidate(domain.FieldValue)
}

// SetTags records an edit of the tag list.
func (d *Dialog) SetTags(tags []string) {
	if slices.Equal(d.state.Tags, tags) {
		return
	}
	d.state.Tags = append(make([]string, 0, len(tags)), tags...)
	d.revalidate(domain.FieldTags)
}

// revalidate reruns the schema rule for a changed field once the form has
// been submitted, replacing or clearing its message.
func (d *Dialog) revalidate(f domain.Field) {
	if !d.submitted && d.errs.Field(f) == "" {
		return
	}
	d.errs.clear(f)
	if fe, ok := domain.ValidateField(d.state, f); !ok {
		d.errs.set(fe)
	}
}

// Submit validates the draft and, when valid, moves to Pending and returns a
// ticket for the create call the caller must now perform. ok is false when
// nothing should be sent.
func (d *Dialog) Submit() (t Ticket, ok bool) {
	if !d.open {
		return Ticket{}, false
	}
	d.submitted = true
	req, ok := d.ctrl.Begin(d.state)
	if !ok {
		return Ticket{}, false
	}
	return Ticket{Request: req, session: d.session}, true
}

// Resolve applies the result of the create call identified by t. A result
// for a closed dialog or an earlier session is discarded untouched.
func (d *Dialog) Resolve(t Ticket, err error) Outcome {
	if !d.open || t.session != d.session {
		d.log.Debug("late create result discarded",
			zap.Uint64("ticket", t.session), zap.Uint64("session", d.session), zap.Error(err))
		return OutcomeDiscarded
	}
	if !d.ctrl.Settle(err) {
		return OutcomeFailed
	}
	d.Close()
	return OutcomeCreated
}

// SubmitAndWait submits and performs the create call synchronously through c.
func (d *Dialog) SubmitAndWait(ctx context.Context, c Creator) (domain.Variable, Outcome) {
	t, ok := d.Submit()
	if !ok {
		return domain.Variable{}, OutcomeRejected
	}
	v, err := c.Create(ctx, t.Request)
	return v, d.Resolve(t, err)
}
