// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors that carry the failed
// operation, the resource involved, and remediation suggestions, so the
// CLI layer can render something more helpful than a bare error string.
package issue
