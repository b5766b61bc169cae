// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the marketplace client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A dotenv file (exported into the process environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry point is [GetClientConfig].
package config
