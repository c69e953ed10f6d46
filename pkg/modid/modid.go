// SPDX-License-Identifier: MPL-2.0

package modid

import "strings"

// ResourceSuffix is the simple-name suffix that classifies a request as a
// resource module (a module containing only localized resources).
const ResourceSuffix = ".resources"

// fieldDelimiter separates the fields of a raw identity string.
const fieldDelimiter = ","

// Request is a transient value parsed from an incoming resolution request.
// It is never persisted.
type Request struct {
	// SimpleName is the first identity field: the module's simple name.
	SimpleName string

	// Fields holds every comma-separated field of the identity, trimmed,
	// including the simple name at index 0. Metadata fields keep their raw
	// "Key=value" form.
	Fields []string

	// IsResource reports whether SimpleName carries the resource-module
	// suffix.
	IsResource bool
}

// Parse splits a raw identity string into a Request. It never fails: an
// empty identity yields a Request with an empty SimpleName and a single
// empty field.
func Parse(identity string) Request {
	parts := strings.Split(identity, fieldDelimiter)
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}

	name := fields[0]
	return Request{
		SimpleName: name,
		Fields:     fields,
		IsResource: strings.HasSuffix(name, ResourceSuffix),
	}
}

// VersionField returns the raw second identity field (conventionally
// "Version=..."), and whether it is present.
func (r Request) VersionField() (string, bool) {
	if len(r.Fields) < 2 {
		return "", false
	}
	return r.Fields[1], true
}

// CultureField returns the raw third identity field (conventionally
// "Culture=..."), and whether it is present. Resource resolution requires
// this field; a request without it cannot name a locale.
func (r Request) CultureField() (string, bool) {
	if len(r.Fields) < 3 {
		return "", false
	}
	return r.Fields[2], true
}

// FieldValue returns the portion of a raw metadata field after its first
// "=" separator. A field with no separator yields the field unchanged, so
// bare tokens (e.g. a locale passed without the "Culture=" prefix) still
// resolve.
func FieldValue(field string) string {
	if _, value, found := strings.Cut(field, "="); found {
		return value
	}
	return field
}
