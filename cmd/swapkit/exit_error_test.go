// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("scenario failed")

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{name: "with cause", err: &ExitError{Code: 1, Err: cause}, want: "scenario failed"},
		{name: "without cause", err: &ExitError{Code: 3}, want: "exit status 3"},
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

func TestExitErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("scenario failed")
	err := &ExitError{Code: 1, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ExitError does not unwrap to its cause")
	}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: mutates package-level version variables.
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-30"
	if got := getVersionString(); got != "1.2.3 (commit: abc123, built: 2026-08-30)" {
		t.Errorf("getVersionString() = %q", got)
	}
}
