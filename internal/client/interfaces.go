// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is what cmd/client drives: the marketplace terminal client with its
// preview server and refresh job.
type Client interface {
	// Run serves previews, restores the session, loads the catalog and
	// blocks in the terminal UI until the user quits or a signal arrives.
	Run() error
}
