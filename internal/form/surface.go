package form

import "vardeck/internal/domain"

// Errors is the error surface of a dialog: at most one message per field and
// one form-level (root) message.
type Errors struct {
	fields map[domain.Field]string
	root   string
}

// Field returns the message attached to f, or "".
func (e *Errors) Field(f domain.Field) string {
	if f == domain.FieldRoot {
		return e.root
	}
	return e.fields[f]
}

// Root returns the form-level message, or "".
func (e *Errors) Root() string {
	return e.root
}

// HasFieldErrors reports whether any field currently shows a message.
func (e *Errors) HasFieldErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the current field errors in name, value, tags order.
func (e *Errors) Fields() []domain.FieldError {
	var out []domain.FieldError
	for _, f := range []domain.Field{domain.FieldName, domain.FieldValue, domain.FieldTags} {
		if msg, ok := e.fields[f]; ok {
			out = append(out, domain.FieldError{Field: f, Message: msg})
		}
	}
	return out
}

// set attaches msg to a field. The first message set in a validation pass wins.
func (e *Errors) set(fe domain.FieldError) {
	if fe.Field == domain.FieldRoot {
		e.root = fe.Message
		return
	}
	if e.fields == nil {
		e.fields = make(map[domain.Field]string)
	}
	if _, exists := e.fields[fe.Field]; exists {
		return
	}
	e.fields[fe.Field] = fe.Message
}

func (e *Errors) clear(f domain.Field) {
	if f == domain.FieldRoot {
		e.root = ""
		return
	}
	delete(e.fields, f)
}

func (e *Errors) clearFields() {
	e.fields = nil
}

func (e *Errors) reset() {
	e.fields = nil
	e.root = ""
}
