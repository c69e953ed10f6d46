// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"log/slog"
	"os"
	"sync"

	"github.com/modseek/modseek/internal/config"
	"github.com/modseek/modseek/internal/registry"
	"github.com/modseek/modseek/pkg/fspath"
	"github.com/modseek/modseek/pkg/modid"
	"github.com/modseek/modseek/pkg/modload"
	"github.com/modseek/modseek/pkg/platform"
	"github.com/modseek/modseek/pkg/types"
)

type (
	// Resolver locates module files across the registered search paths and
	// locale roots and loads them through the configured Loader.
	Resolver struct {
		reg    *registry.Registry
		loader modload.Loader
		cache  *resultCache // nil when disabled

		defaultHost Host

		mu       sync.Mutex
		attached map[Host]struct{}
	}

	// Dependencies defines the injection points for building a Resolver.
	// Nil fields are replaced with production defaults by New. Tests supply
	// fakes to isolate specific behavior.
	Dependencies struct {
		// Loader is the platform load primitive. Defaults to
		// modload.NewPluginLoader().
		Loader modload.Loader

		// DefaultHost receives the resolver's callback when Attach or
		// Initialize runs without an explicit host. Optional.
		DefaultHost Host
	}
)

// New creates a Resolver over the given registry.
func New(reg *registry.Registry, deps Dependencies) *Resolver {
	if deps.Loader == nil {
		deps.Loader = modload.NewPluginLoader()
	}
	return &Resolver{
		reg:         reg,
		loader:      deps.Loader,
		defaultHost: deps.DefaultHost,
		attached:    make(map[Host]struct{}),
	}
}

// defaultResolver builds the shared process-wide instance exactly once.
// sync.OnceValue replaces the double-checked-locking construction a naive
// port would use, so construction ordering is deterministic.
var defaultResolver = sync.OnceValue(func() *Resolver {
	return New(registry.New(), Dependencies{})
})

// Default returns the shared process-wide Resolver. Hosts that embed
// several isolated resolvers should construct their own with New instead.
func Default() *Resolver {
	return defaultResolver()
}

// Registry returns the resolver's path registry, for registration calls and
// path listing.
func (r *Resolver) Registry() *registry.Registry {
	return r.reg
}

// Initialize attaches the resolver to its default host and rebuilds the path
// registry from configuration: first the search-path specification (entries
// with a recursive marker are expanded depth-first), then the locale roots.
// A nil cfg falls back to the process-ambient configuration, or to defaults
// when that cannot be loaded.
// Missing or empty specifications leave the corresponding list empty; absent
// locale configuration is deliberately tolerated the same way. Initialize
// never fails — malformed values were rejected at config load time.
func (r *Resolver) Initialize(cfg *config.Config) {
	if r.defaultHost != nil {
		r.AttachTo(r.defaultHost)
	}

	if cfg == nil {
		loaded, err := config.Load()
		if err != nil || loaded == nil {
			slog.Warn("ambient configuration unavailable, using defaults", "error", err)
			loaded = config.DefaultConfig()
		}
		cfg = loaded
	}

	r.reg.Reset()
	for _, entry := range cfg.SearchPathEntries() {
		added := r.reg.AddTree(entry.Path, entry.Recursive)
		slog.Debug("search path registered", "path", entry.Path, "recursive", entry.Recursive, "added", added)
	}
	for _, root := range cfg.LocaleRootDirs() {
		if !r.reg.AddLocaleRoot(root) {
			slog.Warn("locale root not registered", "path", root)
		}
	}

	if ttl, err := cfg.CacheTTLDuration(); err == nil && ttl > 0 {
		r.cache = newResultCache(ttl)
	} else {
		r.cache = nil
	}
}

// Resolve attempts to locate and load the module named by a raw identity
// string. It returns (nil, nil) when no candidate file exists — "not found"
// is an expected outcome, not an error, and the host's own fallback may
// proceed. A candidate that exists but fails to load yields the loader's
// error unmodified; later candidates are never tried.
func (r *Resolver) Resolve(identity string) (*modload.Module, error) {
	req := modid.Parse(identity)
	if req.SimpleName == "" {
		return nil, nil
	}

	if req.IsResource {
		return r.resolveResource(req)
	}
	return r.resolvePlain(req)
}

// resolvePlain walks the search paths in priority order and loads the first
// existing candidate file.
func (r *Resolver) resolvePlain(req modid.Request) (*modload.Module, error) {
	filename := req.SimpleName + platform.ModuleExt()

	if mod, ok, err := r.loadCached(req); ok {
		return mod, err
	}

	for _, dir := range r.reg.SearchPaths() {
		candidate := fspath.JoinStr(types.FilesystemPath(dir), filename).String()
		if !isRegularFile(candidate) {
			continue
		}
		slog.Debug("module candidate found", "name", req.SimpleName, "path", candidate)
		r.cachePut(req, candidate)
		return r.loader.Load(candidate)
	}

	slog.Debug("module not found", "name", req.SimpleName, "searched", len(r.reg.SearchPaths()))
	return nil, nil
}

// resolveResource extracts the culture field, resolves it to a locale
// directory name, and walks the locale roots for root/locale/filename.
// A request without a culture field (fewer than three identity fields)
// fails immediately, before any filesystem access.
func (r *Resolver) resolveResource(req modid.Request) (*modload.Module, error) {
	cultureField, ok := req.CultureField()
	if !ok {
		slog.Debug("resource request lacks a culture field", "name", req.SimpleName)
		return nil, nil
	}

	locale, ok := r.ResolveLocale(cultureField)
	if !ok {
		slog.Debug("no locale directory matches request", "name", req.SimpleName, "culture", cultureField)
		return nil, nil
	}

	if mod, ok, err := r.loadCached(req); ok {
		return mod, err
	}

	filename := req.SimpleName + platform.ModuleExt()
	for _, root := range r.reg.LocaleRoots() {
		candidate := fspath.JoinStr(types.FilesystemPath(root), locale, filename).String()
		if !isRegularFile(candidate) {
			continue
		}
		slog.Debug("resource candidate found", "name", req.SimpleName, "locale", locale, "path", candidate)
		r.cachePut(req, candidate)
		return r.loader.Load(candidate)
	}

	slog.Debug("resource module not found", "name", req.SimpleName, "locale", locale)
	return nil, nil
}

// isRegularFile reports whether path exists and is not a directory.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
