// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local preview server of the client.
//
// The listen address is bound before the server is built so that the origin
// is known up front: object URLs handed out for previews must point at it.
package server
