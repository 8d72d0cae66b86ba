// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates Di-NEO configuration.
//
// Values are assembled from several sources. Earlier sources take precedence
// over later ones for every field they set:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The server uses [GetStructuredConfig]; the terminal client uses
// [GetClientConfig], a validated view of the fields it needs.
package config
