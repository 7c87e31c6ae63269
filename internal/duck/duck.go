// SPDX-License-Identifier: MPL-2.0

package duck

import (
	"fmt"

	"swapkit-cli/pkg/behavior"
)

const (
	// SlotFlight names the flight binding slot.
	SlotFlight behavior.SlotName = "flight"
	// SlotVoice names the vocalization binding slot.
	SlotVoice behavior.SlotName = "voice"

	// SpeciesMallard is the mallard specialization.
	SpeciesMallard Species = "mallard"
	// SpeciesRubber is the rubber-duck specialization.
	SpeciesRubber Species = "rubber duck"
	// SpeciesDecoy is the wooden decoy specialization.
	SpeciesDecoy Species = "decoy"
)

type (
	// Species is a duck's fixed identity. Unlike the delegated behaviors, it
	// never changes after construction.
	Species string

	// Duck is a host with two binding slots, one per behavior axis. Its
	// behavior is the union of its current bindings; only the species
	// identity is baked in at construction.
	//
	// Duck is not safe for concurrent use.
	Duck struct {
		species Species
		flight  behavior.Slot[FlightBehavior]
		voice   behavior.Slot[QuackBehavior]
	}
)

// String returns the string representation of the Species.
func (s Species) String() string { return string(s) }

// New creates a duck of the given species with both slots unbound. Callers
// must bind both behaviors before invoking them; specialization constructors
// below do that with sensible defaults.
func New(species Species) *Duck {
	return &Duck{
		species: species,
		flight:  behavior.NewSlot[FlightBehavior](SlotFlight),
		voice:   behavior.NewSlot[QuackBehavior](SlotVoice),
	}
}

// NewMallard creates a mallard: flies unaided, audible quack.
func NewMallard() *Duck {
	return newBound(SpeciesMallard, FlyWithWings{}, LoudQuack{})
}

// NewRubberDuck creates a rubber duck: flightless, squeaks.
func NewRubberDuck() *Duck {
	return newBound(SpeciesRubber, FlyNoWay{}, Squeak{})
}

// NewDecoy creates a wooden decoy: flightless and silent.
func NewDecoy() *Duck {
	return newBound(SpeciesDecoy, FlyNoWay{}, MuteQuack{})
}

// newBound creates a duck with both slots pre-bound. The bound variants are
// defaults only; they are not privileged over later rebinds.
func newBound(species Species, flight FlightBehavior, voice QuackBehavior) *Duck {
	d := New(species)
	// Variants are non-nil by construction, so Bind cannot fail here.
	_ = d.flight.Bind(flight)
	_ = d.voice.Bind(voice)
	return d
}

// Species returns the duck's fixed identity.
func (d *Duck) Species() Species { return d.species }

// Describe reports the specialization-specific description. It depends only
// on the species, never on the current bindings.
func (d *Duck) Describe() string {
	return fmt.Sprintf("I am a %s", d.species)
}

// SetFlightBehavior rebinds the flight slot. Valid at any time; takes effect
// on the next PerformFly.
func (d *Duck) SetFlightBehavior(b FlightBehavior) error {
	return d.flight.Bind(b)
}

// SetQuackBehavior rebinds the vocalization slot. Valid at any time; takes
// effect on the next PerformQuack.
func (d *Duck) SetQuackBehavior(b QuackBehavior) error {
	return d.voice.Bind(b)
}

// PerformFly forwards to the currently bound flight variant.
func (d *Duck) PerformFly() (FlightSignal, error) {
	b, err := d.flight.Resolve()
	if err != nil {
		return "", err
	}
	return b.Fly(), nil
}

// PerformQuack forwards to the currently bound vocalization variant.
func (d *Duck) PerformQuack() (QuackSignal, error) {
	b, err := d.voice.Resolve()
	if err != nil {
		return "", err
	}
	return b.Quack(), nil
}
