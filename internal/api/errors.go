package api

import "fmt"

// FormatError reports a response body that does not match the shape the
// backend contract promises. Field names the offending key.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid response format: %s: %s", e.Field, e.Reason)
}

// AuthError is returned after a 401. The session-expiry hook has already
// fired by the time a caller sees this.
type AuthError struct{}

func (e *AuthError) Error() string { return "session expired, log in again" }

// ServerError carries a non-2xx status and the server-supplied message when
// the body had one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}
