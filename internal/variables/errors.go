package variables

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	appErrors "vardeck/internal/errors"
)

// MsgAlreadyExists is the message used when a name is already taken.
const MsgAlreadyExists = "Variable already exists"

// HTTPError wraps a non-2xx response from the variables API.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.URL, e.StatusCode)
}

// classifyHTTPError maps an API error response to a coded error whose message
// is the server's own explanation when it gave one.
func classifyHTTPError(method, url string, status int, body []byte) error {
	httpErr := HTTPError{Method: method, URL: url, StatusCode: status, Body: strings.TrimSpace(string(body))}
	msg := detailMessage(body)

	switch status {
	case http.StatusConflict:
		if msg == "" {
			msg = MsgAlreadyExists
		}
		return appErrors.New(appErrors.CodeConflict, msg, httpErr)
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		if msg == "" {
			msg = "Invalid variable"
		}
		return appErrors.New(appErrors.CodeInvalidRequest, msg, httpErr)
	default:
		if msg == "" {
			msg = fmt.Sprintf("Server error: %d %s", status, http.StatusText(status))
		}
		return appErrors.New(appErrors.CodeRemoteFailed, msg, httpErr)
	}
}

// detailMessage extracts the "detail" field of an error body. FastAPI style
// validation errors carry a list of {"msg": ...} objects instead of a string.
func detailMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		var msgs []string
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func transportError(err error) error {
	return appErrors.New(appErrors.CodeTransportFailed,
		fmt.Sprintf("Could not reach the variables API: %v", err), err)
}

// classifySQLiteError maps a store error to a coded error.
func classifySQLiteError(op string, err error) error {
	if isUniqueViolation(err) {
		return appErrors.New(appErrors.CodeConflict, MsgAlreadyExists, err)
	}
	return appErrors.New(appErrors.CodeStorageFailed, fmt.Sprintf("%s: %v", op, err), err)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
		return true
	}
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}
