// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive reads the metadata and preview embedded in an uploaded
// macro package. Packages are zip archives processed fully in memory.
//
// A package may carry a JSON metadata entry (meta.json, metadata.json,
// makro.json or macro.json, at the root or one directory deep) and a preview
// image or video named preview, thumb or thumbnail.
package archive
