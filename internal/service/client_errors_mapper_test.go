// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
)

func TestMapAdapterError(t *testing.T) {
	transport := fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport)

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"not found", adapter.NewHTTPError(http.StatusNotFound, "Makro not found"), ErrMacroNotFound},
		{"unauthorized", adapter.NewHTTPError(http.StatusUnauthorized, "Token has expired"), ErrNotAuthorized},
		{"malformed token", adapter.NewHTTPError(http.StatusUnprocessableEntity, "Not enough segments"), ErrNotAuthorized},
		{"forbidden", adapter.NewHTTPError(http.StatusForbidden, "Not authorized"), ErrNotAuthor},
		{"conflict", adapter.NewHTTPError(http.StatusConflict, "Username already exists"), ErrNameTaken},
		{"bad gateway", adapter.NewHTTPError(http.StatusBadGateway, "Bad Gateway"), ErrBackendUnavailable},
		{"transport", transport, ErrBackendUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapAdapterError(nil))
	})

	t.Run("unmapped is returned as is", func(t *testing.T) {
		in := adapter.NewHTTPError(http.StatusInternalServerError, "boom")
		assert.Same(t, in, mapAdapterError(in))
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"server message wins", mapAdapterError(adapter.NewHTTPError(http.StatusNotFound, "Makro not found")), "Makro not found"},
		{"not found without message", fmt.Errorf("%w: cached", ErrMacroNotFound), "Macro not found."},
		{"transport", mapAdapterError(fmt.Errorf("%w: timeout", adapter.ErrTransport)), unreachableMessage},
		{"local validation", ErrEmptyMacroName, ErrEmptyMacroName.Error()},
		{"wrapped local", fmt.Errorf("save package: %w", errors.New("disk full")), "save package: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
