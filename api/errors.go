package api

import "fmt"

// The client reports failures through four error kinds. Screens pick
// their reaction with errors.As: auth failures end the session flow,
// everything else is surfaced and retryable.

// ValidationError is raised locally before a request is built. It
// never corresponds to network traffic.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError means credentials were rejected or identity data (token,
// user id) is missing entirely.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NetworkError wraps a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response outside the auth cases, carrying
// the server-supplied message when the body had one.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }
