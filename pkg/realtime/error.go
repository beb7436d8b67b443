package realtime

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by send methods while the transport is down.
// Hitting it in normal operation indicates a sequencing bug in the caller.
var ErrNotConnected = errors.New("realtime: not connected")

// ConnectionError reports a failed connection handshake.
type ConnectionError struct {
	// HTTPStatus is the handshake response status, if one was received.
	HTTPStatus int

	// Err is the underlying dial error.
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("realtime: connect failed (HTTP %d): %v", e.HTTPStatus, e.Err)
	}
	return fmt.Sprintf("realtime: connect failed: %v", e.Err)
}

// Unwrap returns the underlying dial error.
func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError is an error event payload from the Realtime API.
type APIError struct {
	Type    string `json:"type,omitzero"`
	Code    string `json:"code,omitzero"`
	Message string `json:"message,omitzero"`
	Param   string `json:"param,omitzero"`
	EventID string `json:"event_id,omitzero"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("realtime: %s: %s", e.Code, e.Message)
	}
	if e.Type != "" {
		return fmt.Sprintf("realtime: %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("realtime: %s", e.Message)
}
