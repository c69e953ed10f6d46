// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocaleTag is the sentinel error wrapped by InvalidLocaleTagError.
var ErrInvalidLocaleTag = errors.New("invalid locale tag")

type (
	// LocaleTag represents a locale identifier such as "en" or "en-US".
	// A valid tag must be non-empty, contain no whitespace, and contain no
	// path separators (tags name directories under a locale root, so a
	// separator would escape the root).
	LocaleTag string

	// InvalidLocaleTagError is returned when a LocaleTag value is empty,
	// contains whitespace, or contains a path separator.
	InvalidLocaleTagError struct {
		Value LocaleTag
	}
)

// String returns the string representation of the LocaleTag.
func (t LocaleTag) String() string { return string(t) }

// Validate returns nil when the LocaleTag is valid.
func (t LocaleTag) Validate() error {
	s := string(t)
	if s == "" || strings.ContainsAny(s, " \t\n/\\") {
		return &InvalidLocaleTagError{Value: t}
	}
	return nil
}

// Error implements the error interface for InvalidLocaleTagError.
func (e *InvalidLocaleTagError) Error() string {
	return fmt.Sprintf("invalid locale tag %q: must be non-empty with no whitespace or path separators", e.Value)
}

// Unwrap returns ErrInvalidLocaleTag for errors.Is() compatibility.
func (e *InvalidLocaleTagError) Unwrap() error { return ErrInvalidLocaleTag }
