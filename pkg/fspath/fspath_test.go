// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"path/filepath"
	"testing"

	"github.com/modseek/modseek/pkg/fspath"
	"github.com/modseek/modseek/pkg/types"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	got := fspath.Join(types.FilesystemPath("lib"), types.FilesystemPath("modules"))
	want := types.FilesystemPath(filepath.Join("lib", "modules"))
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath("/i18n"), "fr", "App.resources.so")
	want := types.FilesystemPath(filepath.Join("/i18n", "fr", "App.resources.so"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	got := fspath.Dir(types.FilesystemPath("lib/modules/core.so"))
	want := types.FilesystemPath(filepath.Dir("lib/modules/core.so"))
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestBase(t *testing.T) {
	t.Parallel()

	if got := fspath.Base(types.FilesystemPath("lib/modules/core.so")); got != "core.so" {
		t.Errorf("Base() = %q, want %q", got, "core.so")
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("modules"))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	if !fspath.IsAbs(got) {
		t.Errorf("Abs() = %q, want absolute path", got)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := fspath.Clean(types.FilesystemPath("lib//modules/../modules/"))
	want := types.FilesystemPath(filepath.Clean("lib//modules/../modules/"))
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}
