// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the preview server.
//
// RunServer blocks until the server stops; Shutdown makes it return.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// BaseURL is the origin the server answers on, e.g. http://127.0.0.1:8089.
	BaseURL() string
}
