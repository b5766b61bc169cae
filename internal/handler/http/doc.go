// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local preview server of the client.
//
// It serves in-memory preview blobs by object URL so that a browser or media
// player can open the preview of an upload that has not been submitted yet.
// Next to the blobs it exposes Prometheus metrics and the build version.
// Request tracing and access logging are handled by middleware.
package http
