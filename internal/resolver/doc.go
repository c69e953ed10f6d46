// SPDX-License-Identifier: MPL-2.0

// Package resolver implements fallback resolution of dynamically loadable
// modules.
//
// A Resolver is consulted when a host's default loading mechanism fails to
// find a named module. It classifies the requested identity as a plain or
// resource module, walks the configured search paths (or locale roots, for
// resource modules) in priority order, and delegates the first existing
// candidate file to the module load primitive. "Not found" is a silent nil
// result by contract; load failures propagate unmodified.
//
// Resolvers are explicitly constructed and dependency-injected. A shared
// process-wide instance is available through Default for hosts that want
// exactly one; there is no hidden global state beyond it.
package resolver
