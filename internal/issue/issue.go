// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog issue.
type Id int

const (
	ModuleNotFoundId Id = iota + 1
	ConfigLoadFailedId
	LoaderFailedId
	NoSearchPathsId
)

// MarkdownMsg is Markdown text rendered for terminal display.
type MarkdownMsg string

// Issue is a user-facing explanation of a known failure mode, with
// remediation steps.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

// ById returns the catalog issue for an Id, or nil when unknown.
func ById(id Id) *Issue {
	return catalog[id]
}

// Ids returns all catalog issue identifiers in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}

// Id returns the issue's identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's Markdown for terminal display.
func (i *Issue) Render() (string, error) {
	return render(string(i.mdMsg))
}

// render is a seam for tests to stub out glamour.
var render = func(in string) (string, error) {
	return glamour.Render(in, "auto")
}

var catalog = map[Id]*Issue{
	ModuleNotFoundId: {
		id: ModuleNotFoundId,
		mdMsg: `
# Module not found

No candidate file for the requested identity exists under any configured
search path or locale root.

## Things you can try:
- Inspect the effective paths:
~~~
$ modseek paths
~~~
- Add the directory holding your module to the configuration:
~~~
$ modseek config show
~~~
  then extend ` + "`assemblies_source`" + ` (use a trailing ` + "`*`" + ` to include
  subdirectories) or ` + "`languages_directories`" + ` for resource modules.
- For resource modules, check that the identity carries a Culture field:
~~~
App.resources, Version=1.0, Culture=fr
~~~`,
	},

	ConfigLoadFailedId: {
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your config file contains syntax errors or invalid values.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- A ` + "`cache_ttl`" + ` value that is not a Go duration (e.g. "30s", "5m")

## Things you can try:
- Check the error message above for the specific line/column
- Recreate a commented default config:
~~~
$ modseek config init
~~~`,
	},

	LoaderFailedId: {
		id: LoaderFailedId,
		mdMsg: `
# Module file could not be loaded

A candidate file was found but the platform loader rejected it. The file is
malformed, built for a different platform or toolchain version, or dynamic
loading is unsupported on this OS.

## Things you can try:
- Rebuild the module against the current toolchain:
~~~
$ go build -buildmode=plugin ./...
~~~
- Verify the file is a shared object for this platform`,
	},

	NoSearchPathsId: {
		id: NoSearchPathsId,
		mdMsg: `
# No search paths configured

The resolver has an empty path registry, so every plain-module resolution
reports not found.

## Things you can try:
- Create a config file with a search path specification:
~~~
$ modseek config init
~~~
- Or set it for one invocation:
~~~
$ MODSEEK_ASSEMBLIES_SOURCE="/opt/app/modules*" modseek paths
~~~`,
	},
}
