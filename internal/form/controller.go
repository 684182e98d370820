// Package form implements the create-variable dialog independent of any UI
// toolkit: field validation, JSON value parsing, the submit state machine and
// the open/close lifecycle.
package form

import (
	"context"

	"go.uber.org/zap"

	"vardeck/internal/debug"
	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
)

// Creator is the transport seam used to create a variable.
type Creator interface {
	Create(ctx context.Context, req domain.CreateRequest) (domain.Variable, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, req domain.CreateRequest) (domain.Variable, error)

// Create calls f.
func (f CreatorFunc) Create(ctx context.Context, req domain.CreateRequest) (domain.Variable, error) {
	return f(ctx, req)
}

// Status is the submission state of a controller.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
)

func (s Status) String() string {
	if s == StatusPending {
		return "pending"
	}
	return "idle"
}

// Controller runs the validate, parse, create, settle pipeline for one dialog.
// While Pending it refuses further submits.
type Controller struct {
	status Status
	errs   *Errors
	log    *zap.Logger
}

// NewController returns an idle controller reporting into errs.
func NewController(errs *Errors) *Controller {
	return &Controller{errs: errs, log: debug.L().Named("form")}
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	return c.status
}

// Begin validates state and, when it is submittable, moves to Pending and
// returns the request to send. ok is false when the submit was ignored
// (already Pending) or rejected by validation; in the latter case the field
// errors are attached and status stays Idle.
func (c *Controller) Begin(state domain.FormState) (req domain.CreateRequest, ok bool) {
	if c.status == StatusPending {
		c.log.Debug("submit ignored while pending")
		return domain.CreateRequest{}, false
	}

	c.errs.clear(domain.FieldRoot)
	c.errs.clearFields()

	if fieldErrs := domain.Validate(state); len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			c.errs.set(fe)
		}
		c.log.Debug("submit rejected by schema", zap.Int("errors", len(fieldErrs)))
		return domain.CreateRequest{}, false
	}

	value, err := domain.ParseValue(state.Value)
	if err != nil {
		c.errs.set(domain.FieldError{Field: domain.FieldValue, Message: appErrors.MessageOf(err)})
		c.log.Debug("submit rejected: value is not JSON", zap.Error(err))
		return domain.CreateRequest{}, false
	}

	req = domain.NewCreateRequest(state, value)
	c.status = StatusPending
	c.log.Debug("submit started", zap.String("name", req.Name), zap.Strings("tags", req.Tags))
	return req, true
}

// Settle records the result of the create call and returns to Idle. It
// returns true on success. On failure the error's user message goes to the
// root slot.
func (c *Controller) Settle(err error) bool {
	c.status = StatusIdle
	if err != nil {
		msg := RemoteMessage(err)
		c.errs.set(domain.FieldError{Field: domain.FieldRoot, Message: msg})
		c.log.Debug("create failed", zap.String("code", string(appErrors.CodeOf(err))), zap.Error(err))
		return false
	}
	c.log.Debug("create succeeded")
	return true
}

// RemoteMessage returns the text shown for a failed create call.
func RemoteMessage(err error) string {
	msg := appErrors.MessageOf(err)
	if msg == "" {
		return "Failed to create variable"
	}
	return msg
}
