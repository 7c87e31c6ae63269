// SPDX-License-Identifier: MPL-2.0

package ordering

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type (
	// Strategy reorders a sequence. Implementations may transform a copy or
	// work in place, but callers only observe the returned slice, so the
	// input must be treated as shared. Empty and already-ordered inputs are
	// valid and must round-trip to a valid result.
	Strategy[T constraints.Ordered] interface {
		Apply(values []T) []T
	}

	// Ascending orders elements in non-decreasing order. It sorts a copy,
	// leaving the input untouched.
	Ascending[T constraints.Ordered] struct{}

	// Descending orders elements in non-increasing order. It reuses the same
	// comparison step as Ascending and adds a reversal step; the input is
	// left untouched.
	Descending[T constraints.Ordered] struct{}
)

// Apply implements Strategy.
func (Ascending[T]) Apply(values []T) []T {
	return sortedCopy(values)
}

// Apply implements Strategy.
func (Descending[T]) Apply(values []T) []T {
	out := sortedCopy(values)
	slices.Reverse(out)
	return out
}

// sortedCopy is the comparison step shared by both variants: a fresh
// non-decreasing copy of the input.
func sortedCopy[T constraints.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
