// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"os"
	"strings"

	"github.com/modseek/modseek/pkg/modid"
	"github.com/modseek/modseek/pkg/types"
)

// ResolveLocale maps a raw culture metadata field (e.g. "Culture=en-US") to
// the name of a locale directory present under one of the configured locale
// roots. The value after the field's "=" separator is the requested token.
//
// For each root in priority order, the immediate subdirectories are
// enumerated and the first whose name is a prefix of the token is selected;
// the scan stops at the first success across any root. This is deliberately
// prefix-first-match, not locale negotiation: a request for "en-US" matches
// a directory named "en-US" or "en", whichever the directory listing yields
// first, and listing order is filesystem-dependent. The behavior is kept
// for compatibility.
func (r *Resolver) ResolveLocale(cultureField string) (string, bool) {
	// A token with whitespace or path separators could escape the locale
	// root when joined into a candidate path, so it never matches.
	token := modid.FieldValue(cultureField)
	if types.LocaleTag(token).Validate() != nil {
		return "", false
	}

	for _, root := range r.reg.LocaleRoots() {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if strings.HasPrefix(token, entry.Name()) {
				return entry.Name(), true
			}
		}
	}
	return "", false
}
