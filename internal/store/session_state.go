// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"

	"github.com/MKhiriev/macro-marketplace/models"
)

// SessionState holds the logged-in account, if any, and the bearer token
// that goes with it. Subscribers see the account or nil when logged out.
type SessionState struct {
	mu      sync.RWMutex
	session *models.Session

	obs *Observable[*models.Account]
}

// NewSessionState returns a logged-out state.
func NewSessionState() *SessionState {
	return &SessionState{
		obs: NewObservable[*models.Account](nil, cloneAccount),
	}
}

// Current returns the logged-in account.
func (s *SessionState) Current() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Account{}, false
	}
	return s.session.Account, true
}

// Session returns the full session including the token.
func (s *SessionState) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// LoggedIn reports whether an account is present.
func (s *SessionState) LoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// Set stores a new session and emits its account.
func (s *SessionState) Set(session models.Session) {
	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	account := session.Account
	s.obs.Set(&account)
}

// SetAccount replaces the account of the current session, keeping its token.
// It is a no-op when logged out.
func (s *SessionState) SetAccount(account models.Account) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return
	}
	s.session.Account = account
	s.mu.Unlock()

	s.obs.Set(&account)
}

// Clear logs out and emits nil.
func (s *SessionState) Clear() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.obs.Set(nil)
}

// Subscribe attaches fn and replays the current account to it.
func (s *SessionState) Subscribe(fn func(*models.Account)) (unsubscribe func()) {
	return s.obs.Subscribe(fn)
}

func cloneAccount(a *models.Account) *models.Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
