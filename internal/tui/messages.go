// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/macro-marketplace/internal/service"
	"github.com/MKhiriev/macro-marketplace/models"
)

// catalogMsg carries a catalog cache emission.
type catalogMsg struct {
	records []models.MacroRecord
}

// sessionMsg carries a session state emission; nil means logged out.
type sessionMsg struct {
	account *models.Account
}

// pageMsg reports the paging info of a list request.
type pageMsg struct {
	page models.CatalogPage
}

// opDoneMsg ends a background action. status is shown on success.
type opDoneMsg struct {
	status string
	err    error
}

type detailMsg struct {
	record models.MacroRecord
	err    error
}

type deletedMsg struct {
	id  string
	err error
}

type draftMsg struct {
	state service.DraftState
	err   error
}

type loggedInMsg struct {
	account models.Account
	err     error
}

type uploadedMsg struct {
	record models.MacroRecord
	err    error
}
