// SPDX-License-Identifier: MPL-2.0

package duck

type (
	// FlightSignal is the observable effect of a flight behavior. The core
	// returns signals as values; rendering them is the caller's concern.
	FlightSignal string

	// QuackSignal is the observable effect of a vocalization behavior.
	QuackSignal string

	// FlightBehavior is the contract for the flight axis of a duck's
	// behavior. Implementations must be stateless and total.
	FlightBehavior interface {
		Fly() FlightSignal
	}

	// QuackBehavior is the contract for the vocalization axis. It is
	// independent of FlightBehavior: rebinding one axis never affects the
	// other.
	QuackBehavior interface {
		Quack() QuackSignal
	}
)

// String returns the string representation of the FlightSignal.
func (s FlightSignal) String() string { return string(s) }

// String returns the string representation of the QuackSignal.
func (s QuackSignal) String() string { return string(s) }
