// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the marketplace client.
//
// Views never fetch and hold their own copy of the catalog: the list is
// whatever the catalog cache last emitted, and the header shows whatever the
// session state last emitted. User actions call the services and the cache
// pushes the outcome back.
package tui
