// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests, which cannot rely on
// os.UserHomeDir honoring the HOME environment variable on every platform
// (e.g., macOS in CI).
var configDirOverride string

// SetConfigDirOverride points ConfigDir at a custom directory. Intended for
// tests; production code resolves the platform-specific directory.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}
