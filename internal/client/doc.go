// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the marketplace client process.
//
// It wires the backend adapter, the client stores, the services, the local
// preview server and the terminal UI into one lifecycle: restore the session,
// load the catalog, refresh it in the background and run the UI until exit.
package client
