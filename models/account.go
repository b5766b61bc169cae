// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the marketplace account currently logged in.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials are sent on register and login.
type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AccountUpdate is a partial update of the current account.
type AccountUpdate struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Session is what a successful login or probe yields: the account and the
// bearer token used for authenticated requests.
type Session struct {
	Account   Account
	Token     string
	ExpiresAt time.Time
}
