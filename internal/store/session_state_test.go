// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/macro-marketplace/models"
)

func TestSessionState_StartsLoggedOut(t *testing.T) {
	s := NewSessionState()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())

	var got []*models.Account
	s.Subscribe(func(a *models.Account) { got = append(got, a) })
	require.Len(t, got, 1)
	assert.Nil(t, got[0])
}

func TestSessionState_SetAndClear(t *testing.T) {
	s := NewSessionState()
	var got []*models.Account
	s.Subscribe(func(a *models.Account) { got = append(got, a) })

	s.Set(models.Session{Account: models.Account{ID: 7, Name: "anna"}, Token: "tok"})

	acc, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "anna", acc.Name)
	sess, _ := s.Session()
	assert.Equal(t, "tok", sess.Token)

	s.Clear()

	assert.False(t, s.LoggedIn())
	require.Len(t, got, 3)
	assert.Equal(t, int64(7), got[1].ID)
	assert.Nil(t, got[2])
}

func TestSessionState_SetAccountKeepsToken(t *testing.T) {
	s := NewSessionState()

	s.SetAccount(models.Account{ID: 1})
	assert.False(t, s.LoggedIn())

	s.Set(models.Session{Account: models.Account{ID: 1, Name: "old"}, Token: "tok"})
	s.SetAccount(models.Account{ID: 1, Name: "new"})

	sess, ok := s.Session()
	require.True(t, ok)
	assert.Equal(t, "new", sess.Account.Name)
	assert.Equal(t, "tok", sess.Token)
}
