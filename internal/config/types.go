// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// ScenarioDucks is the duck flight/vocalization demonstration.
	// Scenario names are defined locally to avoid coupling config to
	// internal/demo; the demo runner casts at the boundary.
	ScenarioDucks ScenarioName = "ducks"
	// ScenarioPayment is the payment-rail demonstration.
	ScenarioPayment ScenarioName = "payment"
	// ScenarioSorting is the ordering-strategy demonstration.
	ScenarioSorting ScenarioName = "sorting"
)

var (
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidScenarioName is the sentinel error wrapped by InvalidScenarioNameError.
	ErrInvalidScenarioName = errors.New("invalid scenario name")
	// ErrDuplicateScenario is the sentinel error wrapped by DuplicateScenarioError.
	ErrDuplicateScenario = errors.New("duplicate scenario")
	// ErrNoScenarios is returned when demo.scenarios is empty; an empty list
	// would turn `swapkit demo` into a silent no-op.
	ErrNoScenarios = errors.New("no scenarios configured")
)

type (
	// ColorScheme selects how CLI output is themed.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ScenarioName identifies one of the demonstration scenarios.
	ScenarioName string

	// InvalidScenarioNameError is returned when a ScenarioName value is not
	// recognized. It wraps ErrInvalidScenarioName for errors.Is() compatibility.
	InvalidScenarioNameError struct {
		Value ScenarioName
	}

	// DuplicateScenarioError is returned when demo.scenarios lists the same
	// scenario twice. It wraps ErrDuplicateScenario for errors.Is() compatibility.
	DuplicateScenarioError struct {
		Value ScenarioName
	}

	// UIConfig groups presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// DemoConfig groups demonstration settings.
	DemoConfig struct {
		// Scenarios is the ordered list run by `swapkit demo` without
		// arguments. Must be non-empty, valid, and duplicate-free;
		// Config.Validate enforces all three.
		Scenarios []ScenarioName `mapstructure:"scenarios"`
		// SampleValues is the input sequence for the sorting scenario.
		SampleValues []int `mapstructure:"sample_values"`
	}

	// Config is the fully resolved swapkit configuration.
	Config struct {
		UI   UIConfig   `mapstructure:"ui"`
		Demo DemoConfig `mapstructure:"demo"`
	}
)

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not one of auto, dark, light.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// String returns the string representation of the ScenarioName.
func (s ScenarioName) String() string { return string(s) }

// Validate returns an error if the ScenarioName is not a known scenario.
func (s ScenarioName) Validate() error {
	switch s {
	case ScenarioDucks, ScenarioPayment, ScenarioSorting:
		return nil
	default:
		return &InvalidScenarioNameError{Value: s}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidScenarioNameError) Error() string {
	return fmt.Sprintf("invalid scenario name %q (must be ducks, payment, or sorting)", e.Value)
}

// Unwrap returns ErrInvalidScenarioName so callers can use errors.Is for programmatic detection.
func (e *InvalidScenarioNameError) Unwrap() error { return ErrInvalidScenarioName }

// Error implements the error interface.
func (e *DuplicateScenarioError) Error() string {
	return fmt.Sprintf("scenario %q listed more than once", e.Value)
}

// Unwrap returns ErrDuplicateScenario so callers can use errors.Is for programmatic detection.
func (e *DuplicateScenarioError) Unwrap() error { return ErrDuplicateScenario }

// Validate checks the whole configuration: a recognized color scheme and a
// non-empty, valid, duplicate-free scenario list.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}

	if len(c.Demo.Scenarios) == 0 {
		return ErrNoScenarios
	}
	seen := make(map[ScenarioName]bool, len(c.Demo.Scenarios))
	for _, s := range c.Demo.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s] {
			return &DuplicateScenarioError{Value: s}
		}
		seen[s] = true
	}
	return nil
}

// DefaultConfig returns the built-in defaults: auto color scheme, quiet
// output, all three scenarios in spec order, and a small shuffled sample.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Demo: DemoConfig{
			Scenarios:    []ScenarioName{ScenarioDucks, ScenarioPayment, ScenarioSorting},
			SampleValues: []int{5, 1, 4, 2, 3},
		},
	}
}
