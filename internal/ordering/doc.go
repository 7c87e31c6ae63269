// SPDX-License-Identifier: MPL-2.0

// Package ordering implements the list-ordering scenario: a parametric
// strategy contract over ordered element types, with ascending and
// descending variants built from a shared comparison step, and a sorter
// host that delegates to whichever strategy is currently bound.
package ordering
