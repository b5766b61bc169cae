// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/metrics"
	"github.com/MKhiriev/macro-marketplace/internal/store"
	"github.com/MKhiriev/macro-marketplace/internal/utils"
	"github.com/MKhiriev/macro-marketplace/models"
)

const (
	opLogin         = "login"
	opRegister      = "register"
	opLogout        = "logout"
	opProbe         = "probe"
	opUpdateAccount = "update_account"
)

type clientSessionService struct {
	adapter  adapter.ServerAdapter
	state    *store.SessionState
	sessions store.SessionRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewClientSessionService returns a [ClientSessionService] driving the
// session state of storages. The token of a successful login is persisted
// through storages.Sessions when it is set.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:  serverAdapter,
		state:    storages.Session,
		sessions: storages.Sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	creds, err := validateCredentials(creds)
	if err != nil {
		return models.Account{}, err
	}

	env, err := s.adapter.Login(ctx, creds)
	metrics.ObserveRemote(opLogin, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Str("name", creds.Name).Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Account{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return models.Account{}, mapAdapterError(err)
	}

	session := models.Session{
		Account: accountFromDTO(env.Account),
		Token:   env.AccessToken,
	}
	if claims, claimsErr := utils.ReadTokenClaims(env.AccessToken); claimsErr == nil {
		session.ExpiresAt = claims.ExpiresAt
	} else {
		s.logger.Debug().Err(claimsErr).Str("func", "clientSessionService.Login").Msg("access token is not a JWT, expiry unknown")
	}

	s.state.Set(session)
	s.persist(ctx, session)

	s.logger.Info().Str("func", "clientSessionService.Login").Int64("account_id", session.Account.ID).Msg("logged in")
	return session.Account, nil
}

func (s *clientSessionService) Register(ctx context.Context, creds models.Credentials) (models.Account, error) {
	creds, err := validateCredentials(creds)
	if err != nil {
		return models.Account{}, err
	}

	_, err = s.adapter.Register(ctx, creds)
	metrics.ObserveRemote(opRegister, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Register").Str("name", creds.Name).Msg("registration failed")
		return models.Account{}, mapAdapterError(err)
	}

	return s.Login(ctx, creds)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if !s.state.LoggedIn() && s.adapter.Token() == "" {
		s.forget(ctx)
		return nil
	}

	err := s.adapter.Logout(ctx)
	metrics.ObserveRemote(opLogout, err, false)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) && !errors.Is(err, adapter.ErrUnauthorized) {
		s.logger.Err(err).Str("func", "clientSessionService.Logout").Msg("logout failed")
		return mapAdapterError(err)
	}

	s.forget(ctx)
	s.logger.Info().Str("func", "clientSessionService.Logout").Msg("logged out")
	return nil
}

func (s *clientSessionService) ProbeSession(ctx context.Context) bool {
	session, ok := s.state.Session()
	if !ok {
		session = models.Session{Token: s.adapter.Token()}
	}
	if session.Token == "" && s.sessions != nil {
		stored, err := s.sessions.LoadSession(ctx)
		switch {
		case err == nil:
			session = stored
		case !errors.Is(err, store.ErrLocalSessionNotFound):
			s.logger.Err(err).Str("func", "clientSessionService.ProbeSession").Msg("failed to load stored session")
		}
	}
	if session.Token == "" {
		s.forget(ctx)
		return false
	}

	if claims, err := utils.ReadTokenClaims(session.Token); err == nil {
		if claims.Expired(s.now()) {
			s.logger.Debug().Str("func", "clientSessionService.ProbeSession").Msg("stored token expired")
			s.forget(ctx)
			return false
		}
		session.ExpiresAt = claims.ExpiresAt
	}

	s.adapter.SetToken(session.Token)
	dto, err := s.adapter.GetAccount(ctx)
	metrics.ObserveRemote(opProbe, err, false)
	if err != nil {
		if !rejectsToken(err) {
			// keep the stored token for the next start
			s.logger.Warn().Err(err).Str("func", "clientSessionService.ProbeSession").Msg("backend unreachable, session not restored")
			s.adapter.SetToken("")
			s.state.Clear()
			return false
		}
		s.logger.Debug().Err(err).Str("func", "clientSessionService.ProbeSession").Msg("session not accepted by backend")
		s.forget(ctx)
		return false
	}

	session.Account = accountFromDTO(dto)
	s.state.Set(session)
	s.persist(ctx, session)
	return true
}

func (s *clientSessionService) UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error) {
	session, ok := s.state.Session()
	if !ok {
		return models.Account{}, ErrNotLoggedIn
	}
	if update.Name == nil && update.Password == nil {
		return models.Account{}, ErrEmptyPatch
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.Account{}, ErrEmptyCredentials
		}
		update.Name = &name
	}
	if update.Password != nil && *update.Password == "" {
		return models.Account{}, ErrEmptyCredentials
	}

	dto, err := s.adapter.UpdateAccount(ctx, update)
	metrics.ObserveRemote(opUpdateAccount, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.UpdateAccount").Int64("account_id", session.Account.ID).Msg("failed to update account")
		return models.Account{}, mapAdapterError(err)
	}

	account := accountFromDTO(dto)
	s.state.SetAccount(account)
	session.Account = account
	s.persist(ctx, session)
	return account, nil
}

func (s *clientSessionService) persist(ctx context.Context, session models.Session) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.persist").Msg("failed to store session")
	}
}

func (s *clientSessionService) forget(ctx context.Context) {
	s.adapter.SetToken("")
	s.state.Clear()
	if s.sessions == nil {
		return
	}
	if err := s.sessions.DeleteSession(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.forget").Msg("failed to delete stored session")
	}
}

// rejectsToken reports whether err means the backend refused the token, as
// opposed to not answering at all.
func rejectsToken(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNotFound)
}

func validateCredentials(creds models.Credentials) (models.Credentials, error) {
	creds.Name = strings.TrimSpace(creds.Name)
	if creds.Name == "" || creds.Password == "" {
		return creds, ErrEmptyCredentials
	}
	return creds, nil
}
