// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinels matched with [errors.Is]. Status-derived ones are wrapped in an
// [*HTTPError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("request entity too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("backend unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport is returned when no response was received at all.
	ErrTransport = errors.New("backend unreachable")

	// ErrDecodeResponse is returned when a 2xx body cannot be decoded.
	ErrDecodeResponse = errors.New("malformed backend response")
)

// HTTPError is a non-2xx response from the backend.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the server-provided message, or the status text.
	Message string

	kind error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

// Unwrap returns the sentinel matching the status code.
func (e *HTTPError) Unwrap() error {
	return e.kind
}

// NewHTTPError builds the error returned for a response with the given status
// and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message, kind: kindOf(status)}
}
