// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/macro-marketplace/models"
)

// maxPlainMessage bounds how much of a non-JSON error body ends up in a message.
const maxPlainMessage = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewHTTPError(resp.StatusCode(), extractMessage(resp.StatusCode(), resp.Body()))
}

func kindOf(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	// flask-jwt-extended answers 422 for a malformed token
	case http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusRequestEntityTooLarge:
		return ErrTooLarge
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

// extractMessage prefers the "error" field of a JSON body, then "message" and
// "msg", then the trimmed body itself, then the status text.
func extractMessage(status int, body []byte) string {
	var eb models.ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if msg := strings.TrimSpace(eb.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(eb.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(eb.Msg); msg != "" {
			return msg
		}
	}

	plain := strings.TrimSpace(string(body))
	if plain != "" && !strings.HasPrefix(plain, "<") && !strings.HasPrefix(plain, "{") {
		if r := []rune(plain); len(r) > maxPlainMessage {
			plain = string(r[:maxPlainMessage])
		}
		return plain
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected response"
}
