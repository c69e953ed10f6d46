// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ListDelimiter separates entries in the path specification strings.
	ListDelimiter = ";"

	// RecursiveMarker suffixed to a search-path entry means "expand this
	// directory recursively".
	RecursiveMarker = "*"
)

// ErrInvalidCacheTTL is the sentinel error wrapped by InvalidCacheTTLError.
var ErrInvalidCacheTTL = errors.New("invalid cache ttl")

type (
	// Config is the modseek configuration.
	Config struct {
		// AssembliesSource is the semicolon-delimited search-path
		// specification for plain-module lookup. An entry ending in "*" is
		// expanded recursively. Empty means no search paths.
		AssembliesSource string `mapstructure:"assemblies_source"`

		// LanguagesDirectories is the semicolon-delimited locale-root
		// specification for resource-module lookup. An absent value is
		// treated as an empty list: resource resolution then always reports
		// not found.
		LanguagesDirectories string `mapstructure:"languages_directories"`

		// CacheTTL is a Go duration string controlling the resolution result
		// cache. Empty disables the cache.
		CacheTTL string `mapstructure:"cache_ttl"`

		// Verbose enables diagnostic logging.
		Verbose bool `mapstructure:"verbose"`
	}

	// PathEntry is one parsed search-path specification entry.
	PathEntry struct {
		Path      string
		Recursive bool
	}

	// InvalidCacheTTLError is returned when CacheTTL is set but does not
	// parse as a Go duration.
	InvalidCacheTTLError struct {
		Value string
	}
)

// Error implements the error interface for InvalidCacheTTLError.
func (e *InvalidCacheTTLError) Error() string {
	return fmt.Sprintf("invalid cache ttl %q: must be a Go duration such as \"30s\"", e.Value)
}

// Unwrap returns ErrInvalidCacheTTL for errors.Is() compatibility.
func (e *InvalidCacheTTLError) Unwrap() error { return ErrInvalidCacheTTL }

// DefaultConfig returns the built-in defaults: no paths, no cache, quiet.
func DefaultConfig() *Config {
	return &Config{}
}

// SearchPathEntries parses AssembliesSource into ordered entries. Empty
// entries (stray delimiters, whitespace) are dropped; order is preserved
// because it encodes lookup priority.
func (c *Config) SearchPathEntries() []PathEntry {
	var entries []PathEntry
	for _, raw := range splitSpec(c.AssembliesSource) {
		entry := PathEntry{Path: raw}
		if strings.HasSuffix(raw, RecursiveMarker) {
			entry.Recursive = true
			entry.Path = strings.TrimSpace(strings.TrimSuffix(raw, RecursiveMarker))
		}
		if entry.Path == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// LocaleRootDirs parses LanguagesDirectories into an ordered directory list.
// A missing or empty value yields nil, by documented choice: the original
// design left absent locale configuration unspecified, and treating it as an
// empty list keeps initialization infallible.
func (c *Config) LocaleRootDirs() []string {
	return splitSpec(c.LanguagesDirectories)
}

// CacheTTLDuration parses CacheTTL. A zero duration with nil error means
// the cache is disabled.
func (c *Config) CacheTTLDuration() (time.Duration, error) {
	if c.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d < 0 {
		return 0, &InvalidCacheTTLError{Value: c.CacheTTL}
	}
	return d, nil
}

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	_, err := c.CacheTTLDuration()
	return err
}

// splitSpec splits a delimiter-separated specification, trimming whitespace
// and dropping empty entries.
func splitSpec(spec string) []string {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(spec, ListDelimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
