package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport failures: the server could not be
// reached or did not answer in time.
var ErrUnavailable = errors.New("server unavailable")

// ServerError is a non-2xx response with whatever structured body the
// backend sent. The body is kept verbatim so page controllers can surface
// the backend's own message.
type ServerError struct {
	Status  int
	Message string
	Body    map[string]any
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %d %s", e.Status, http.StatusText(e.Status))
}

// newServerError picks the display message from the decoded error body,
// trying the field names the backend has used over time.
func newServerError(status int, body map[string]any) *ServerError {
	e := &ServerError{Status: status, Body: body}
	for _, key := range []string{"message", "error", "msg"} {
		if s, ok := body[key].(string); ok && s != "" {
			e.Message = s
			break
		}
	}
	return e
}
