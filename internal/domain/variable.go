package domain

import "time"

// JSONValue is a decoded JSON value: map[string]any, []any, string,
// json.Number, bool or nil.
type JSONValue = any

// Variable is a named, tagged, JSON-valued record held by a backend.
type Variable struct {
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Value   JSONValue `json:"value" yaml:"value"`
	Tags    []string  `json:"tags" yaml:"tags"`
	Created time.Time `json:"created" yaml:"created"`
	Updated time.Time `json:"updated" yaml:"updated"`
}

// CreateRequest is the payload sent to a backend to create a variable.
// It is built once per submit and not modified afterwards.
type CreateRequest struct {
	Name  string    `json:"name"`
	Value JSONValue `json:"value"`
	Tags  []string  `json:"tags"`
}

// FormState is the in-progress draft of a variable as typed by the user.
type FormState struct {
	Name  string
	Value string // raw JSON text
	Tags  []string
}

// DefaultFormState returns the empty draft a dialog starts from.
func DefaultFormState() FormState {
	return FormState{Name: "", Value: "", Tags: []string{}}
}

// Clone returns a copy whose Tags slice does not alias the receiver's.
func (s FormState) Clone() FormState {
	tags := make([]string, len(s.Tags))
	copy(tags, s.Tags)
	s.Tags = tags
	return s
}

// NewCreateRequest builds a request from a validated draft and its parsed
// value. Omitted tags become an empty list.
func NewCreateRequest(state FormState, value JSONValue) CreateRequest {
	tags := make([]string, len(state.Tags))
	copy(tags, state.Tags)
	return CreateRequest{
		Name:  state.Name,
		Value: value,
		Tags:  tags,
	}
}
