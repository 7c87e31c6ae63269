// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"swapkit-cli/internal/config"
	"swapkit-cli/internal/demo"
)

// demoCmd runs the demonstration scenarios.
var demoCmd = &cobra.Command{
	Use:   "demo [scenario]",
	Short: "Run the behavior-composition demonstrations",
	Long: `Run the demonstration scenarios.

Without arguments, every scenario from the configuration runs in order
(default: ducks, payment, sorting). Pass a scenario name to run just one.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{demo.ScenarioDucks.String(), demo.ScenarioPayment.String(), demo.ScenarioSorting.String()},
	RunE:      runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	scenarios, err := selectScenarios(cfg, args)
	if err != nil {
		return err
	}

	runner := demo.NewRunner(demo.Options{
		Logger:       newTraceLogger(cfg),
		SampleValues: cfg.Demo.SampleValues,
	})

	out := cmd.OutOrStdout()
	for _, scenario := range scenarios {
		report, err := runner.Run(cmd.Context(), scenario)
		if err != nil {
			return err
		}
		renderReport(out, report)
	}
	return nil
}

// selectScenarios resolves which scenarios to run: the single named one, or
// the configured list.
func selectScenarios(cfg *config.Config, args []string) ([]demo.ScenarioName, error) {
	if len(args) == 1 {
		scenario := demo.ScenarioName(args[0])
		if err := scenario.Validate(); err != nil {
			return nil, err
		}
		return []demo.ScenarioName{scenario}, nil
	}

	// Config defines scenario names locally; cast at the boundary.
	scenarios := make([]demo.ScenarioName, 0, len(cfg.Demo.Scenarios))
	for _, s := range cfg.Demo.Scenarios {
		scenarios = append(scenarios, demo.ScenarioName(s))
	}
	return scenarios, nil
}

// newTraceLogger returns a debug logger on stderr when tracing is enabled,
// and a discard logger otherwise.
func newTraceLogger(cfg *config.Config) *log.Logger {
	if !verbose && !cfg.UI.Verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "swapkit",
	})
}

// renderReport writes one scenario report as styled text.
func renderReport(w io.Writer, report demo.Report) {
	fmt.Fprintln(w, TitleStyle.Render("» "+report.Scenario.String()))
	for _, step := range report.Steps {
		fmt.Fprintf(w, "  %s %s %s\n",
			ActorStyle.Render(step.Actor),
			SubtitleStyle.Render(step.Action+":"),
			EffectStyle.Render(step.Effect),
		)
	}
	fmt.Fprintln(w)
}
