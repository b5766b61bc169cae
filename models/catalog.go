// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MakroDTO is a macro as the backend serializes it.
type MakroDTO struct {
	ID         MacroID `json:"id"`
	Name       string  `json:"name"`
	Desc       *string `json:"desc"`
	Usecase    *string `json:"usecase"`
	AuthorID   int64   `json:"author_id"`
	AuthorName string  `json:"author_name"`
	Filename   string  `json:"filename,omitempty"`
	PreviewURL *string `json:"preview_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

// AccountDTO is an account as the backend serializes it.
type AccountDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// CatalogEnvelope is the paginated response of the list, search and
// my-makros endpoints.
type CatalogEnvelope struct {
	Makros      []MakroDTO `json:"makros"`
	Total       int        `json:"total"`
	Pages       int        `json:"pages"`
	CurrentPage int        `json:"current_page"`
	PerPage     int        `json:"per_page"`
}

// MakroEnvelope wraps a single macro response.
type MakroEnvelope struct {
	Makro MakroDTO `json:"makro"`
}

// AccountEnvelope wraps account responses. AccessToken is only present on
// login.
type AccountEnvelope struct {
	Account     AccountDTO `json:"account"`
	AccessToken string     `json:"access_token,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// RandomEnvelope is the response of the random endpoint.
type RandomEnvelope struct {
	Makros []MakroDTO `json:"makros"`
	Count  int        `json:"count"`
}

// ErrorBody is the structured error body of the backend.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	// Msg is used by the JWT layer of the backend.
	Msg string `json:"msg"`
}

// PageRequest selects a catalog page.
type PageRequest struct {
	Page    int
	PerPage int
}

// SearchQuery holds the search filters. Empty filters are not sent.
type SearchQuery struct {
	Query    string
	Category Category
	Author   string
	PageRequest
}

// CatalogPage is a normalized page of the catalog.
type CatalogPage struct {
	Records     []MacroRecord
	Total       int
	Pages       int
	CurrentPage int
	PerPage     int
}
