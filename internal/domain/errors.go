package domain

import (
	appErrors "vardeck/internal/errors"
)

// Messages shown to the user for local validation failures.
const (
	MsgNameTooShort = "Name must be at least 2 characters"
	MsgTagTooShort  = "Tag must be at least 2 characters"
	MsgInvalidJSON  = "Value must be valid JSON"
)

// ErrInvalidJSON is returned by ParseValue when the raw value does not decode
// as a single JSON value.
var ErrInvalidJSON = appErrors.New(appErrors.CodeInvalidJSON, MsgInvalidJSON, nil)

func invalidJSONError(err error) error {
	return appErrors.New(appErrors.CodeInvalidJSON, MsgInvalidJSON, err)
}
