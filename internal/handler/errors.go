// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoBlobSource is returned by NewHandlers when no blob registry is given.
// The preview server has nothing to serve without one.
var errNoBlobSource = errors.New("no blob source for the preview server")
