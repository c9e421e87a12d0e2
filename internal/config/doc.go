// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and validates the storefront server configuration.
//
// Values are collected from environment variables and command-line flags and
// merged (first non-zero value wins) before a final validation pass. See
// GetStructuredConfig for the entry point.
package config
