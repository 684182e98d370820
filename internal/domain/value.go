package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// ParseValue decodes the raw text of a variable value into a JSONValue.
// Numbers are kept as json.Number. Empty input and trailing data after the
// first value are rejected with ErrInvalidJSON.
func ParseValue(raw string) (JSONValue, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInvalidJSON
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, invalidJSONError(err)
	}
	// A second Decode must hit EOF, otherwise "1 2" or "{} x" would pass.
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, invalidJSONError(err)
	}
	return v, nil
}

// FormatValue renders a JSONValue as indented JSON for previews.
func FormatValue(v JSONValue) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
