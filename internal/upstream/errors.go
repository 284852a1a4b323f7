package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error describes a failed backend call.
// Status is zero when the backend was never reached.
type Error struct {
	Service string
	Status  int
	Body    []byte
	Timeout bool
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s: timeout: %v", e.Service, e.Err)
	case e.Status == 0:
		return fmt.Sprintf("%s: unreachable: %v", e.Service, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Service, e.Status, e.Err)
	default:
		return fmt.Sprintf("%s: status %d", e.Service, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unreachable is true for transport failures, timeouts included.
func (e *Error) Unreachable() bool {
	return e.Status == 0
}

// Message returns the backend's "error" or "message" field, if any.
func (e *Error) Message() string {
	return ErrorMessage(e.Body)
}

func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

func ErrorMessage(body []byte) string {
	var payload struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Error.(string); ok && s != "" {
		return s
	}
	return payload.Message
}

// IsJSON reports whether body parses as a JSON value.
func IsJSON(body []byte) bool {
	return len(body) > 0 && json.Valid(body)
}
