// SPDX-License-Identifier: MPL-2.0

// Package modload wraps the platform module-loading primitive.
//
// The Loader interface is the seam between the resolver and the real loading
// mechanism: production code uses PluginLoader (Go's plugin package), tests
// substitute counting fakes. Loaded modules are trusted as-is; there is no
// version checking, signature validation, or sandboxing.
package modload
