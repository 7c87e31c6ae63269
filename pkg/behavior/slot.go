// SPDX-License-Identifier: MPL-2.0

package behavior

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSlotName is the sentinel error wrapped by InvalidSlotNameError.
	ErrInvalidSlotName = errors.New("invalid slot name")
	// ErrUnboundSlot is the sentinel error wrapped by UnboundSlotError.
	ErrUnboundSlot = errors.New("no variant bound to slot")
	// ErrNilVariant is the sentinel error wrapped by NilVariantError.
	ErrNilVariant = errors.New("nil variant")
)

type (
	// SlotName identifies a binding slot on a host (e.g., "flight", "method").
	// Values must be non-empty and not whitespace-only.
	SlotName string

	// InvalidSlotNameError is returned when a SlotName is empty or
	// whitespace-only. It wraps ErrInvalidSlotName for errors.Is() compatibility.
	InvalidSlotNameError struct {
		Value SlotName
	}

	// UnboundSlotError is returned when a host operation resolves a slot that
	// has never been bound. It wraps ErrUnboundSlot for errors.Is() compatibility.
	//
	// Resolving an unbound slot is a configuration bug in the caller, so the
	// failure surfaces immediately instead of degrading to a silent no-op.
	UnboundSlotError struct {
		Slot SlotName
	}

	// NilVariantError is returned when a nil interface value is bound into a
	// slot. It wraps ErrNilVariant for errors.Is() compatibility.
	//
	// Contract satisfaction itself is checked statically by the type system;
	// a nil interface value is the one violation that can only be caught at
	// bind time.
	NilVariantError struct {
		Slot SlotName
	}

	// Slot is a named reference cell holding at most one variant of the
	// contract type C. A slot starts Unbound (unless constructed with
	// BoundSlot) and moves to Bound via Bind; rebinding is valid at any time
	// and takes effect on the next Resolve.
	//
	// Slots are not safe for concurrent use. A host shared across goroutines
	// needs external synchronization around each slot.
	Slot[C any] struct {
		name    SlotName
		variant C
		bound   bool
	}
)

// String returns the string representation of the SlotName.
func (n SlotName) String() string { return string(n) }

// Validate returns an error if the SlotName is empty or whitespace-only.
func (n SlotName) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidSlotNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidSlotNameError) Error() string {
	return fmt.Sprintf("invalid slot name %q (must not be empty or whitespace-only)", e.Value)
}

// Unwrap returns ErrInvalidSlotName so callers can use errors.Is for programmatic detection.
func (e *InvalidSlotNameError) Unwrap() error { return ErrInvalidSlotName }

// Error implements the error interface.
func (e *UnboundSlotError) Error() string {
	return fmt.Sprintf("no variant bound to slot %q", e.Slot)
}

// Unwrap returns ErrUnboundSlot so callers can use errors.Is for programmatic detection.
func (e *UnboundSlotError) Unwrap() error { return ErrUnboundSlot }

// Error implements the error interface.
func (e *NilVariantError) Error() string {
	return fmt.Sprintf("cannot bind nil variant to slot %q", e.Slot)
}

// Unwrap returns ErrNilVariant so callers can use errors.Is for programmatic detection.
func (e *NilVariantError) Unwrap() error { return ErrNilVariant }

// NewSlot creates an unbound slot with the given name.
func NewSlot[C any](name SlotName) Slot[C] {
	return Slot[C]{name: name}
}

// BoundSlot creates a slot pre-bound to the given variant. Pre-binding is a
// convenience for specialization constructors; it is not privileged over
// later rebinds.
func BoundSlot[C any](name SlotName, variant C) (Slot[C], error) {
	s := NewSlot[C](name)
	if err := s.Bind(variant); err != nil {
		return Slot[C]{}, err
	}
	return s, nil
}

// Name returns the slot's name.
func (s *Slot[C]) Name() SlotName { return s.name }

// IsBound reports whether a variant is currently bound.
func (s *Slot[C]) IsBound() bool { return s.bound }

// Bind replaces the slot's variant reference. Binding is valid at any time,
// has no effect on already-completed invocations, and takes effect strictly
// before the next Resolve. A nil interface value is rejected.
func (s *Slot[C]) Bind(variant C) error {
	if isNil(variant) {
		return &NilVariantError{Slot: s.name}
	}
	s.variant = variant
	s.bound = true
	return nil
}

// Resolve returns the currently bound variant, or UnboundSlotError if the
// slot has never been bound.
func (s *Slot[C]) Resolve() (C, error) {
	if !s.bound {
		var zero C
		return zero, &UnboundSlotError{Slot: s.name}
	}
	return s.variant, nil
}

// isNil reports whether the variant is a nil interface value. Contract types
// are interfaces in practice, so the any-conversion comparison suffices;
// non-nilable types always compare false.
func isNil[C any](variant C) bool {
	return any(variant) == nil
}
