// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler    = errors.New("no http handler to serve")
	errEmptyAddress = errors.New("empty listen address")
	errNoListener   = errors.New("no listener to serve on")
)
