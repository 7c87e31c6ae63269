// SPDX-License-Identifier: MPL-2.0

package duck

const (
	// SignalFlyWithWings is the effect of unaided flight.
	SignalFlyWithWings FlightSignal = "flying with wings"
	// SignalFlyNoWay is the effect of a flightless variant. It is still an
	// observable signal, not a silent no-op.
	SignalFlyNoWay FlightSignal = "staying firmly on the ground"
	// SignalFlyRocketPowered is the effect of propulsion-assisted flight.
	SignalFlyRocketPowered FlightSignal = "blasting off with a rocket"

	// SignalLoudQuack is the audible call.
	SignalLoudQuack QuackSignal = "quack quack"
	// SignalMute is the silent variant's effect.
	SignalMute QuackSignal = "..."
	// SignalSqueak is the alternate audible call, distinct from SignalLoudQuack.
	SignalSqueak QuackSignal = "squeak squeak"
)

type (
	// FlyWithWings is the unaided-flight variant.
	FlyWithWings struct{}

	// FlyNoWay is the flightless variant. Binding it is how a specialization
	// opts out of flight without leaving the slot unbound.
	FlyNoWay struct{}

	// FlyRocketPowered is the propulsion-assisted variant. Any duck can be
	// retrofitted with it at runtime, regardless of its specialization.
	FlyRocketPowered struct{}

	// LoudQuack is the standard audible call.
	LoudQuack struct{}

	// MuteQuack is the silent vocalization variant.
	MuteQuack struct{}

	// Squeak is the alternate audible call.
	Squeak struct{}
)

// Fly implements FlightBehavior.
func (FlyWithWings) Fly() FlightSignal { return SignalFlyWithWings }

// Fly implements FlightBehavior.
func (FlyNoWay) Fly() FlightSignal { return SignalFlyNoWay }

// Fly implements FlightBehavior.
func (FlyRocketPowered) Fly() FlightSignal { return SignalFlyRocketPowered }

// Quack implements QuackBehavior.
func (LoudQuack) Quack() QuackSignal { return SignalLoudQuack }

// Quack implements QuackBehavior.
func (MuteQuack) Quack() QuackSignal { return SignalMute }

// Quack implements QuackBehavior.
func (Squeak) Quack() QuackSignal { return SignalSqueak }
