// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims are the claims the client reads from its bearer token.
type TokenClaims struct {
	// Subject is the account identifier the token was issued for.
	Subject string
	// ExpiresAt is zero when the token carries no "exp" claim.
	ExpiresAt time.Time
}

// Expired reports whether the token expired at now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ReadTokenClaims decodes the claims of tokenString without verifying its
// signature. The client never holds the signing key; it only needs the
// expiry to avoid sending requests with a stale token.
//
// The subject may be encoded either as a string or as a number.
func ReadTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	var result TokenClaims
	switch sub := claims["sub"].(type) {
	case string:
		result.Subject = sub
	case float64:
		result.Subject = strconv.FormatInt(int64(sub), 10)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}
