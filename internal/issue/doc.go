// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps, plus a catalog of
// Markdown-rendered issues for the CLI. The resolver library itself never
// renders issues; not-found outcomes stay silent there by contract.
package issue
