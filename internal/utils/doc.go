// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the client:
// the resty HTTP client wrapper, UUID generation and bearer token inspection.
package utils
