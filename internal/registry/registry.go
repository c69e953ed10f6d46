// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/modseek/modseek/pkg/fspath"
	"github.com/modseek/modseek/pkg/types"
)

// Registry holds the search-path and locale-root lists. The zero value is
// not usable; construct with New.
type Registry struct {
	mu          sync.RWMutex
	searchPaths []string
	localeRoots []string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// AddPath appends a directory to the search-path list after normalizing it
// to an absolute canonical form. It reports whether the path was appended:
// a path that is already registered or does not exist as a directory on the
// filesystem is not added and yields false. Duplicate additions are
// idempotent by design; invalid paths are rejected rather than silently
// swallowed so callers can observe registration failures.
func (r *Registry) AddPath(path string) bool {
	abs, ok := normalizeDir(path)
	if !ok {
		slog.Debug("search path rejected", "path", path)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.searchPaths, abs) {
		return false
	}
	r.searchPaths = append(r.searchPaths, abs)
	return true
}

// AddLocaleRoot appends a directory to the locale-root list with the same
// normalization and deduplication rules as AddPath. The two lists are
// distinct namespaces and are never merged.
func (r *Registry) AddLocaleRoot(path string) bool {
	abs, ok := normalizeDir(path)
	if !ok {
		slog.Debug("locale root rejected", "path", path)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.localeRoots, abs) {
		return false
	}
	r.localeRoots = append(r.localeRoots, abs)
	return true
}

// AddTree appends root to the search-path list and, when recursive is true,
// every subdirectory below it, depth-first with unbounded depth. A
// nonexistent root is a no-op. Returns the number of paths appended.
//
// Symlink cycles are not guarded against; a cyclic tree will recurse until
// path length limits stop it.
func (r *Registry) AddTree(root string, recursive bool) int {
	abs, ok := normalizeDir(root)
	if !ok {
		return 0
	}

	added := 0
	if r.AddPath(abs) {
		added++
	}
	if !recursive {
		return added
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		slog.Warn("failed to list search path subdirectories", "path", abs, "error", err)
		return added
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		added += r.AddTree(fspath.JoinStr(types.FilesystemPath(abs), entry.Name()).String(), true)
	}
	return added
}

// SearchPaths returns a snapshot copy of the search-path list in priority
// order (front = highest priority, consulted first).
func (r *Registry) SearchPaths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.searchPaths)
}

// LocaleRoots returns a snapshot copy of the locale-root list in priority
// order.
func (r *Registry) LocaleRoots() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.localeRoots)
}

// Reset clears both lists. Used by re-initialization; there is no partial
// removal API.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchPaths = nil
	r.localeRoots = nil
}

// normalizeDir resolves path to an absolute canonical form and verifies it
// exists as a directory.
func normalizeDir(path string) (string, bool) {
	p := types.FilesystemPath(path)
	if p.Validate() != nil {
		return "", false
	}
	abs, err := fspath.Abs(p)
	if err != nil {
		return "", false
	}
	abs = fspath.Clean(abs)

	info, err := os.Stat(abs.String())
	if err != nil || !info.IsDir() {
		return "", false
	}
	return abs.String(), true
}
