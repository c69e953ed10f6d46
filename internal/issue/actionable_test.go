// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "resolve module"},
			want: "failed to resolve module",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "resolve module", Resource: "Foo"},
			want: "failed to resolve module: Foo",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "/etc/modseek/config.cue",
				Cause:     errors.New("syntax error"),
			},
			want: "failed to load configuration: /etc/modseek/config.cue: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := WrapWithOperation(cause, "resolve module")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := NewErrorContext().
		WithOperation("resolve module").
		WithResource("App.resources, Version=1.0, Culture=fr").
		WithSuggestion("Check 'modseek paths'").
		WithSuggestion("Verify the Culture field").
		Wrap(inner).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "• Check 'modseek paths'") {
		t.Errorf("Format(false) missing first suggestion:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) must not include the error chain:\n%s", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. inner") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().WithResource("x").BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestWrapHelpers_NilPassthrough(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "op"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
	if got := WrapWithContext(nil, "op", "res"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}
}
