// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"errors"
	"fmt"
	"plugin"
)

// ErrLoad is the sentinel error wrapped by LoadError.
var ErrLoad = errors.New("module load failed")

type (
	// Module is an opaque handle to a loaded module. Ownership stays with
	// the loader that produced it; the resolver only passes it through.
	Module struct {
		// Path is the absolute path of the file the module was loaded from.
		Path string

		// Symbols provides access to the module's exported symbols. May be
		// nil when the loader does not expose symbols (e.g. test fakes).
		Symbols SymbolResolver
	}

	// SymbolResolver looks up an exported symbol by name.
	SymbolResolver interface {
		Lookup(name string) (any, error)
	}

	// Loader is the platform module-loading primitive: load the module at a
	// path, returning a handle or failing. Implementations must not fall
	// back to other paths on failure; candidate selection is the resolver's
	// job.
	Loader interface {
		Load(path string) (*Module, error)
	}

	// LoadError is returned when the underlying primitive rejects a file
	// that was found on disk (malformed, incompatible, or the platform does
	// not support dynamic loading).
	LoadError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load module %s: %v", e.Path, e.Cause)
}

// Unwrap returns ErrLoad for errors.Is() compatibility. The original cause
// is available via the Cause field.
func (e *LoadError) Unwrap() error { return ErrLoad }

// PluginLoader loads modules through Go's plugin package. On platforms
// without plugin support, Load fails with a LoadError at call time rather
// than at construction, matching plugin.Open's own behavior.
type PluginLoader struct{}

// NewPluginLoader returns a Loader backed by plugin.Open.
func NewPluginLoader() *PluginLoader { return &PluginLoader{} }

// Load opens the plugin at path. The returned Module exposes the plugin's
// exported symbols through its Symbols field.
func (l *PluginLoader) Load(path string) (*Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return &Module{Path: path, Symbols: pluginSymbols{p: p}}, nil
}

// pluginSymbols adapts *plugin.Plugin to SymbolResolver.
type pluginSymbols struct {
	p *plugin.Plugin
}

func (s pluginSymbols) Lookup(name string) (any, error) {
	sym, err := s.p.Lookup(name)
	if err != nil {
		return nil, err
	}
	return sym, nil
}
