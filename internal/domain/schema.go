package domain

import "unicode/utf8"

// Field identifies a form field, or the form root for cross-field and remote errors.
type Field string

const (
	FieldName  Field = "name"
	FieldValue Field = "value"
	FieldTags  Field = "tags"
	FieldRoot  Field = "root"
)

const (
	// MinNameLength is the minimum variable name length, in characters.
	MinNameLength = 2
	// MinTagLength is the minimum length of each tag, in characters.
	MinTagLength = 2
)

// FieldError attaches a message to a field.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Validate checks the draft against the field rules. It returns at most one
// error per field, ordered name, value, tags. Value is only checked to be a
// string here; JSON validity is ParseValue's job.
func Validate(state FormState) []FieldError {
	var errs []FieldError
	for _, f := range []Field{FieldName, FieldValue, FieldTags} {
		if fe, ok := ValidateField(state, f); !ok {
			errs = append(errs, fe)
		}
	}
	return errs
}

// ValidateField runs the schema rule for a single field. ok is false when the
// field fails, in which case fe holds the first failing rule's message.
func ValidateField(state FormState, field Field) (fe FieldError, ok bool) {
	switch field {
	case FieldName:
		if utf8.RuneCountInString(state.Name) < MinNameLength {
			return FieldError{Field: FieldName, Message: MsgNameTooShort}, false
		}
	case FieldTags:
		for _, tag := range state.Tags {
			if utf8.RuneCountInString(tag) < MinTagLength {
				return FieldError{Field: FieldTags, Message: MsgTagTooShort}, false
			}
		}
	}
	return FieldError{}, true
}
