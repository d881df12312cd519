// SPDX-License-Identifier: Apache-2.0

// Package config loads the smartfinder application configuration.
//
// Configuration is assembled by a small builder that reads, in order,
// environment variables, command-line flags, and an optional JSON file, and
// merges them with dario.cat/mergo so that earlier non-zero values win.
// The merged result is validated before use.
package config
