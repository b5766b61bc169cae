// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNoConfig is returned by [NewApp] when no configuration is given.
var ErrNoConfig = errors.New("client: config is required")
