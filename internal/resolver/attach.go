// SPDX-License-Identifier: MPL-2.0

package resolver

import "github.com/modseek/modseek/pkg/modload"

type (
	// NotFoundHandler is invoked by a host when its default loading
	// mechanism fails to find a named module. A (nil, nil) return means
	// "no resolution"; the host's own fallback proceeds.
	NotFoundHandler func(requestedIdentity string) (*modload.Module, error)

	// Host models an isolated execution context that raises "module not
	// found" notifications. Implementations must tolerate multiple
	// registered handlers; the resolver attaches itself at most once per
	// host.
	Host interface {
		OnModuleNotFound(handler NotFoundHandler)
	}
)

// AttachTo installs the resolver's Resolve method as host's module-not-found
// handler. Attachment is idempotent per host identity: a host that already
// has this resolver attached is left untouched and AttachTo reports false.
// Safe for concurrent use.
func (r *Resolver) AttachTo(host Host) bool {
	if host == nil {
		return false
	}

	r.mu.Lock()
	if _, done := r.attached[host]; done {
		r.mu.Unlock()
		return false
	}
	r.attached[host] = struct{}{}
	r.mu.Unlock()

	host.OnModuleNotFound(r.Resolve)
	return true
}

// Attach installs the resolver on its configured default host. It reports
// false when no default host is configured or the host was already attached.
func (r *Resolver) Attach() bool {
	return r.AttachTo(r.defaultHost)
}
