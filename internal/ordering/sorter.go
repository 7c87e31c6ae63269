// SPDX-License-Identifier: MPL-2.0

package ordering

import (
	"golang.org/x/exp/constraints"

	"swapkit-cli/pkg/behavior"
)

// SlotStrategy names the sorter's single binding slot.
const SlotStrategy behavior.SlotName = "strategy"

// Sorter is a host with a single strategy slot. Sort forwards to whichever
// strategy is currently bound.
//
// Sorter is not safe for concurrent use.
type Sorter[T constraints.Ordered] struct {
	strategy behavior.Slot[Strategy[T]]
}

// NewSorter creates a sorter with no strategy bound.
func NewSorter[T constraints.Ordered]() *Sorter[T] {
	return &Sorter[T]{strategy: behavior.NewSlot[Strategy[T]](SlotStrategy)}
}

// NewSorterWith creates a sorter pre-bound to the given strategy.
func NewSorterWith[T constraints.Ordered](s Strategy[T]) (*Sorter[T], error) {
	sorter := NewSorter[T]()
	if err := sorter.SetStrategy(s); err != nil {
		return nil, err
	}
	return sorter, nil
}

// SetStrategy rebinds the strategy slot. Valid at any time; takes effect on
// the next Sort.
func (s *Sorter[T]) SetStrategy(strategy Strategy[T]) error {
	return s.strategy.Bind(strategy)
}

// Sort applies the bound strategy to values and returns the reordered
// sequence. It fails fast with an unbound-slot error when no strategy is
// bound.
func (s *Sorter[T]) Sort(values []T) ([]T, error) {
	strategy, err := s.strategy.Resolve()
	if err != nil {
		return nil, err
	}
	return strategy.Apply(values), nil
}
