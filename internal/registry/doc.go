// SPDX-License-Identifier: MPL-2.0

// Package registry maintains the ordered, deduplicated directory lists
// consulted during module resolution.
//
// Two separate namespaces are kept: search paths for plain-module lookup and
// locale roots for resource-module lookup. Insertion order encodes priority
// (front = highest). All operations are safe for concurrent use; resolution
// reads only briefly block during the rare registration mutation.
package registry
