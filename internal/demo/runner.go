// SPDX-License-Identifier: MPL-2.0

package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"swapkit-cli/internal/duck"
	"swapkit-cli/internal/ordering"
	"swapkit-cli/internal/payment"
)

const (
	// ScenarioDucks demonstrates two independent behavior slots on one host.
	ScenarioDucks ScenarioName = "ducks"
	// ScenarioPayment demonstrates a two-operation contract with a fixed
	// internal order.
	ScenarioPayment ScenarioName = "payment"
	// ScenarioSorting demonstrates a parametric single-transform contract.
	ScenarioSorting ScenarioName = "sorting"
)

// ErrUnknownScenario is the sentinel error wrapped by UnknownScenarioError.
var ErrUnknownScenario = errors.New("unknown scenario")

type (
	// ScenarioName identifies a demonstration scenario.
	ScenarioName string

	// UnknownScenarioError is returned when Run is asked for a scenario that
	// does not exist. It wraps ErrUnknownScenario for errors.Is() compatibility.
	UnknownScenarioError struct {
		Value ScenarioName
	}

	// Step is one observable moment of a scenario: which actor did what and
	// the effect it produced.
	Step struct {
		Actor  string
		Action string
		Effect string
	}

	// Report is the structured outcome of one scenario run.
	Report struct {
		Scenario ScenarioName
		Steps    []Step
	}

	// Options configures a Runner. Zero values mean "discard logs" and
	// "use the built-in sample sequence".
	Options struct {
		// Logger receives bind/invoke traces. Nil discards them.
		Logger *log.Logger
		// SampleValues is the input sequence for the sorting scenario.
		SampleValues []int
	}

	// Runner executes demonstration scenarios.
	Runner struct {
		logger       *log.Logger
		sampleValues []int
	}
)

// String returns the string representation of the ScenarioName.
func (s ScenarioName) String() string { return string(s) }

// Validate returns an error if the ScenarioName is not a known scenario.
func (s ScenarioName) Validate() error {
	switch s {
	case ScenarioDucks, ScenarioPayment, ScenarioSorting:
		return nil
	default:
		return &UnknownScenarioError{Value: s}
	}
}

// Error implements the error interface.
func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario %q (known: ducks, payment, sorting)", e.Value)
}

// Unwrap returns ErrUnknownScenario so callers can use errors.Is for programmatic detection.
func (e *UnknownScenarioError) Unwrap() error { return ErrUnknownScenario }

// NewRunner creates a runner from the given options.
func NewRunner(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sample := opts.SampleValues
	if sample == nil {
		sample = []int{5, 1, 4, 2, 3}
	}
	return &Runner{logger: logger, sampleValues: sample}
}

// Run executes one scenario and returns its step report.
func (r *Runner) Run(ctx context.Context, scenario ScenarioName) (Report, error) {
	select {
	case <-ctx.Done():
		return Report{}, fmt.Errorf("run scenario canceled: %w", ctx.Err())
	default:
	}

	switch scenario {
	case ScenarioDucks:
		return r.runDucks()
	case ScenarioPayment:
		return r.runPayment()
	case ScenarioSorting:
		return r.runSorting()
	default:
		return Report{}, &UnknownScenarioError{Value: scenario}
	}
}

// runDucks drives two duck specializations: one on its default bindings,
// one rebound to rocket-powered flight mid-scenario.
func (r *Runner) runDucks() (Report, error) {
	report := Report{Scenario: ScenarioDucks}

	mallard := duck.NewMallard()
	report.Steps = append(report.Steps, Step{
		Actor:  mallard.Species().String(),
		Action: "describe",
		Effect: mallard.Describe(),
	})

	r.logger.Debug("invoking delegated behavior", "host", mallard.Species(), "slot", duck.SlotVoice)
	quack, err := mallard.PerformQuack()
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{Actor: mallard.Species().String(), Action: "quack", Effect: quack.String()})

	r.logger.Debug("invoking delegated behavior", "host", mallard.Species(), "slot", duck.SlotFlight)
	fly, err := mallard.PerformFly()
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{Actor: mallard.Species().String(), Action: "fly", Effect: fly.String()})

	rubber := duck.NewRubberDuck()
	report.Steps = append(report.Steps, Step{
		Actor:  rubber.Species().String(),
		Action: "describe",
		Effect: rubber.Describe(),
	})

	fly, err = rubber.PerformFly()
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{Actor: rubber.Species().String(), Action: "fly", Effect: fly.String()})

	r.logger.Debug("rebinding slot", "host", rubber.Species(), "slot", duck.SlotFlight, "variant", "rocket-powered")
	if err := rubber.SetFlightBehavior(duck.FlyRocketPowered{}); err != nil {
		return Report{}, err
	}

	fly, err = rubber.PerformFly()
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{Actor: rubber.Species().String(), Action: "fly", Effect: fly.String()})

	return report, nil
}

// runPayment drives one processor through every rail, proving the host
// never branches on which rail is bound.
func (r *Runner) runPayment() (Report, error) {
	report := Report{Scenario: ScenarioPayment}

	processor := payment.NewProcessor()
	rails := []payment.Method{
		payment.CreditCard{},
		payment.DigitalWallet{},
		payment.BankTransfer{},
	}

	for _, rail := range rails {
		r.logger.Debug("rebinding slot", "host", "processor", "slot", payment.SlotMethod, "variant", rail.Rail())
		if err := processor.SetMethod(rail); err != nil {
			return Report{}, err
		}

		receipt, err := processor.Process()
		if err != nil {
			return Report{}, err
		}
		actor := receipt.Rail.String()
		report.Steps = append(report.Steps,
			Step{Actor: actor, Action: "authenticate", Effect: receipt.Auth.String()},
			Step{Actor: actor, Action: "transact", Effect: receipt.Transaction.String()},
		)
	}

	return report, nil
}

// runSorting drives one sorter through both ordering strategies, plus the
// empty-input case.
func (r *Runner) runSorting() (Report, error) {
	report := Report{Scenario: ScenarioSorting}

	sorter, err := ordering.NewSorterWith[int](ordering.Ascending[int]{})
	if err != nil {
		return Report{}, err
	}

	ascending, err := sorter.Sort(r.sampleValues)
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{
		Actor:  "sorter",
		Action: fmt.Sprintf("ascending %v", r.sampleValues),
		Effect: fmt.Sprintf("%v", ascending),
	})

	r.logger.Debug("rebinding slot", "host", "sorter", "slot", ordering.SlotStrategy, "variant", "descending")
	if err := sorter.SetStrategy(ordering.Descending[int]{}); err != nil {
		return Report{}, err
	}

	descending, err := sorter.Sort(r.sampleValues)
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{
		Actor:  "sorter",
		Action: fmt.Sprintf("descending %v", r.sampleValues),
		Effect: fmt.Sprintf("%v", descending),
	})

	empty, err := sorter.Sort(nil)
	if err != nil {
		return Report{}, err
	}
	report.Steps = append(report.Steps, Step{
		Actor:  "sorter",
		Action: "descending []",
		Effect: fmt.Sprintf("%v", empty),
	})

	return report, nil
}
