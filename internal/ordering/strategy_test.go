// SPDX-License-Identifier: MPL-2.0

package ordering

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"swapkit-cli/pkg/behavior"
)

func TestOrderingLaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
	}{
		{name: "empty", input: []int{}},
		{name: "single element", input: []int{7}},
		{name: "already ascending", input: []int{1, 2, 3, 4}},
		{name: "already descending", input: []int{4, 3, 2, 1}},
		{name: "shuffled", input: []int{5, 1, 4, 2, 3}},
		{name: "duplicates", input: []int{2, 1, 2, 1, 2}},
		{name: "negatives", input: []int{0, -3, 7, -3, 2}},
	}

	ascending := Ascending[int]{}
	descending := Descending[int]{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			asc := ascending.Apply(tt.input)
			if !slices.IsSorted(asc) {
				t.Errorf("Ascending.Apply(%v) = %v, not non-decreasing", tt.input, asc)
			}
			if !isPermutation(tt.input, asc) {
				t.Errorf("Ascending.Apply(%v) = %v, not a permutation of input", tt.input, asc)
			}
			// Idempotent on its own output.
			if again := ascending.Apply(asc); !slices.Equal(again, asc) {
				t.Errorf("Ascending not idempotent: %v -> %v", asc, again)
			}

			desc := descending.Apply(tt.input)
			if !isNonIncreasing(desc) {
				t.Errorf("Descending.Apply(%v) = %v, not non-increasing", tt.input, desc)
			}
			if !isPermutation(tt.input, desc) {
				t.Errorf("Descending.Apply(%v) = %v, not a permutation of input", tt.input, desc)
			}
			if again := descending.Apply(desc); !slices.Equal(again, desc) {
				t.Errorf("Descending not idempotent: %v -> %v", desc, again)
			}
		})
	}
}

func TestStrategiesLeaveInputUntouched(t *testing.T) {
	t.Parallel()

	input := []int{3, 1, 2}
	snapshot := slices.Clone(input)

	Ascending[int]{}.Apply(input)
	if !slices.Equal(input, snapshot) {
		t.Errorf("Ascending.Apply mutated its input: %v", input)
	}

	Descending[int]{}.Apply(input)
	if !slices.Equal(input, snapshot) {
		t.Errorf("Descending.Apply mutated its input: %v", input)
	}
}

func TestStrategiesOverStrings(t *testing.T) {
	t.Parallel()

	input := []string{"pear", "apple", "quince", "fig"}

	asc := Ascending[string]{}.Apply(input)
	want := []string{"apple", "fig", "pear", "quince"}
	if !slices.Equal(asc, want) {
		t.Errorf("Ascending.Apply(%v) = %v, want %v", input, asc, want)
	}

	desc := Descending[string]{}.Apply(input)
	wantDesc := []string{"quince", "pear", "fig", "apple"}
	if !slices.Equal(desc, wantDesc) {
		t.Errorf("Descending.Apply(%v) = %v, want %v", input, desc, wantDesc)
	}
}

func TestSorterDelegation(t *testing.T) {
	t.Parallel()

	sorter, err := NewSorterWith[int](Ascending[int]{})
	if err != nil {
		t.Fatalf("NewSorterWith() error = %v", err)
	}

	got, err := sorter.Sort([]int{3, 1, 2})
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}

	// Rebinding takes effect on the next Sort.
	if err := sorter.SetStrategy(Descending[int]{}); err != nil {
		t.Fatalf("SetStrategy() error = %v", err)
	}
	got, err = sorter.Sort([]int{3, 1, 2})
	if err != nil {
		t.Fatalf("Sort() after rebind error = %v", err)
	}
	if want := []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("Sort() after rebind = %v, want %v", got, want)
	}
}

func TestSorterUnboundStrategy(t *testing.T) {
	t.Parallel()

	sorter := NewSorter[int]()

	if _, err := sorter.Sort([]int{1}); !errors.Is(err, behavior.ErrUnboundSlot) {
		t.Errorf("Sort() on unbound sorter error = %v, want ErrUnboundSlot", err)
	}
}

// isPermutation reports whether b is a reordering of a.
func isPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// isNonIncreasing reports whether values are in non-increasing order.
func isNonIncreasing(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			return false
		}
	}
	return true
}
