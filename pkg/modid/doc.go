// SPDX-License-Identifier: MPL-2.0

// Package modid parses requested module identity strings.
//
// An identity is a comma-separated list of fields where the first field is
// the simple module name and later fields carry metadata such as
// "Version=1.0" and "Culture=fr". Parsing never fails; absent fields are
// simply not present in the result.
package modid
