// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ModuleExt returns the file extension appended to a simple module name to
// form a loadable candidate filename on the current OS.
func ModuleExt() string {
	return ModuleExtFor(runtime.GOOS)
}

// ModuleExtFor returns the module file extension for a given GOOS value.
// This is a pure function so candidate-name construction is testable
// independently of the host platform.
func ModuleExtFor(goos string) string {
	if goos == Windows {
		return ".dll"
	}
	return ".so"
}
