// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates modseek configuration.
//
// Configuration lives in a CUE file validated against an embedded schema and
// merged into Viper, with defaults applied first and MODSEEK_* environment
// variables overriding file values. The two resolver-facing values are
// delimiter-separated path specifications; parsing them into entries happens
// here so the resolver only sees structured input.
package config
