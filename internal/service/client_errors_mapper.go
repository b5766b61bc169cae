// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
)

// unreachableMessage is shown when no message could be taken from the backend.
const unreachableMessage = "The marketplace could not be reached. Please try again later."

// mapAdapterError translates an adapter error into a service error. The
// original error stays in the chain so [UserMessage] can still read the
// backend's message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		sentinel = ErrMacroNotFound
	case errors.Is(err, adapter.ErrUnauthorized):
		sentinel = ErrNotAuthorized
	case errors.Is(err, adapter.ErrForbidden):
		sentinel = ErrNotAuthor
	case errors.Is(err, adapter.ErrConflict):
		sentinel = ErrNameTaken
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, adapter.ErrBadGateway):
		sentinel = ErrBackendUnavailable
	default:
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// UserMessage returns the text to show for err. A message sent by the backend
// is used verbatim; transport failures get a generic message; local errors
// use their own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *adapter.HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr.Message != "":
		return httpErr.Message
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, ErrBackendUnavailable):
		return unreachableMessage
	case errors.Is(err, ErrMacroNotFound):
		return "Macro not found."
	}
	return err.Error()
}
