// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/modseek/modseek/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version = "1.2.3"
	got := getVersionString()
	if !strings.HasPrefix(got, "1.2.3") || !strings.Contains(got, "commit:") {
		t.Errorf("getVersionString() = %q, want version with commit info", got)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("loading configuration").
		WithSuggestion("run 'modseek config init'").
		Wrap(plain).
		Build()
	got := formatErrorForDisplay(ae, false)
	if !strings.Contains(got, "loading configuration") {
		t.Errorf("formatErrorForDisplay(actionable) = %q, want operation mentioned", got)
	}
}

func TestResolveResultAccounting(t *testing.T) {
	t.Parallel()

	results := []resolveResult{
		{Identity: "A", Found: true, Path: "/libs/A.so"},
		{Identity: "B"},
		{Identity: "C", Error: "bad magic"},
	}

	if !anyNotFound(results) {
		t.Error("anyNotFound() = false, want true for identity B")
	}
	if got := countErrors(results); got != 1 {
		t.Errorf("countErrors() = %d, want 1", got)
	}

	if anyNotFound(results[:1]) {
		t.Error("anyNotFound() = true for a fully resolved set")
	}
}

func TestRootCommandWiring(t *testing.T) {
	t.Parallel()

	want := []string{"resolve", "paths", "config", "watch"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing the %q subcommand", name)
		}
	}
}
