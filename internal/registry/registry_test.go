// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestAddPath_Canonicalization(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := New()

	if !r.AddPath(dir) {
		t.Fatal("AddPath() = false for a valid directory, want true")
	}

	// Equivalent non-canonical forms must all dedup to the first entry.
	if r.AddPath(dir + string(os.PathSeparator)) {
		t.Error("AddPath() = true for trailing-separator duplicate, want false")
	}
	if r.AddPath(filepath.Join(dir, ".")) {
		t.Error("AddPath() = true for dot-suffixed duplicate, want false")
	}
	if r.AddPath(dir) {
		t.Error("AddPath() = true for exact duplicate, want false")
	}

	got := r.SearchPaths()
	if len(got) != 1 {
		t.Fatalf("SearchPaths() has %d entries, want 1: %v", len(got), got)
	}
	if got[0] != filepath.Clean(dir) {
		t.Errorf("SearchPaths()[0] = %q, want canonical %q", got[0], filepath.Clean(dir))
	}
}

func TestAddPath_RejectsInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := New()

	if r.AddPath(filepath.Join(dir, "missing")) {
		t.Error("AddPath() = true for nonexistent directory, want false")
	}
	if r.AddPath("") {
		t.Error("AddPath() = true for empty path, want false")
	}

	// A regular file is not a valid search path.
	file := filepath.Join(dir, "file.so")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r.AddPath(file) {
		t.Error("AddPath() = true for a regular file, want false")
	}

	if got := r.SearchPaths(); len(got) != 0 {
		t.Errorf("SearchPaths() = %v, want empty", got)
	}
}

func TestAddPath_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	a := t.TempDir()
	b := t.TempDir()
	c := t.TempDir()

	r := New()
	r.AddPath(b)
	r.AddPath(a)
	r.AddPath(c)
	r.AddPath(a) // duplicate must not reorder

	got := r.SearchPaths()
	want := []string{filepath.Clean(b), filepath.Clean(a), filepath.Clean(c)}
	if len(got) != len(want) {
		t.Fatalf("SearchPaths() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAddTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "x")
	subsub := filepath.Join(sub, "y")
	if err := os.MkdirAll(subsub, 0o755); err != nil {
		t.Fatal(err)
	}
	// A file amid the tree must not become a search path.
	if err := os.WriteFile(filepath.Join(sub, "core.so"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("recursive", func(t *testing.T) {
		t.Parallel()
		r := New()
		if added := r.AddTree(root, true); added != 3 {
			t.Errorf("AddTree(recursive) = %d, want 3", added)
		}
		got := r.SearchPaths()
		want := []string{root, sub, subsub}
		if len(got) != len(want) {
			t.Fatalf("SearchPaths() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != filepath.Clean(want[i]) {
				t.Errorf("SearchPaths()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("non-recursive", func(t *testing.T) {
		t.Parallel()
		r := New()
		if added := r.AddTree(root, false); added != 1 {
			t.Errorf("AddTree(non-recursive) = %d, want 1", added)
		}
		if got := r.SearchPaths(); len(got) != 1 || got[0] != filepath.Clean(root) {
			t.Errorf("SearchPaths() = %v, want [%q]", got, root)
		}
	})

	t.Run("nonexistent root", func(t *testing.T) {
		t.Parallel()
		r := New()
		if added := r.AddTree(filepath.Join(root, "missing"), true); added != 0 {
			t.Errorf("AddTree(missing) = %d, want 0", added)
		}
	})
}

func TestLocaleRoots_SeparateNamespace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := New()

	if !r.AddLocaleRoot(dir) {
		t.Fatal("AddLocaleRoot() = false, want true")
	}
	if r.AddLocaleRoot(dir) {
		t.Error("AddLocaleRoot() = true for duplicate, want false")
	}

	// The same directory may appear in both lists; they never merge.
	if !r.AddPath(dir) {
		t.Error("AddPath() = false after AddLocaleRoot of same dir, want true")
	}

	if got := r.LocaleRoots(); len(got) != 1 {
		t.Errorf("LocaleRoots() = %v, want one entry", got)
	}
	if got := r.SearchPaths(); len(got) != 1 {
		t.Errorf("SearchPaths() = %v, want one entry", got)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := New()
	r.AddPath(dir)
	r.AddLocaleRoot(dir)

	r.Reset()

	if got := r.SearchPaths(); len(got) != 0 {
		t.Errorf("SearchPaths() after Reset = %v, want empty", got)
	}
	if got := r.LocaleRoots(); len(got) != 0 {
		t.Errorf("LocaleRoots() after Reset = %v, want empty", got)
	}
}

func TestSearchPaths_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	a := t.TempDir()
	b := t.TempDir()
	r := New()
	r.AddPath(a)

	snap := r.SearchPaths()
	r.AddPath(b)

	if len(snap) != 1 {
		t.Errorf("snapshot grew after later AddPath: %v", snap)
	}
	snap[0] = "/mutated"
	if got := r.SearchPaths(); got[0] == "/mutated" {
		t.Error("mutating a snapshot leaked into the registry")
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	dirs := make([]string, 8)
	for i := range dirs {
		dirs[i] = t.TempDir()
	}

	r := New()
	var wg sync.WaitGroup
	for _, d := range dirs {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.AddPath(d)
		}()
		go func() {
			defer wg.Done()
			_ = r.SearchPaths()
		}()
	}
	wg.Wait()

	if got := r.SearchPaths(); len(got) != len(dirs) {
		t.Errorf("SearchPaths() has %d entries after concurrent adds, want %d", len(got), len(dirs))
	}
}
