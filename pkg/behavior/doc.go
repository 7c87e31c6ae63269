// SPDX-License-Identifier: MPL-2.0

// Package behavior provides the binding-slot primitive that hosts use to
// delegate part of their behavior to interchangeable variants. A slot holds
// a reference to at most one variant of its contract type and can be
// rebound at any time; resolving an unbound slot fails fast.
//
// This package is a leaf dependency: it imports only the standard library.
// Host packages (duck, payment, ordering) import it; it never imports them.
package behavior
