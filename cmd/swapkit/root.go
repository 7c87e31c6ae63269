// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for swapkit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables bind/invoke tracing on stderr.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "swapkit",
		Short: "A demonstrator for runtime-swappable behavior composition",
		Long: TitleStyle.Render("swapkit") + SubtitleStyle.Render(" - runtime-swappable behavior composition") + `

swapkit shows how an entity can delegate parts of its behavior to
interchangeable variants bound through narrow contracts, and how those
bindings can be replaced at any moment without touching the entity.

The same mechanism is demonstrated three ways: duck flight and
vocalization, payment-rail authentication and transaction, and
list-ordering strategies.

` + SubtitleStyle.Render("Examples:") + `
  swapkit demo              Run every scenario in configured order
  swapkit demo ducks        Run a single scenario
  swapkit explain           List the available guides
  swapkit explain payment   Read one guide
  swapkit config show       Show the effective configuration`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable bind/invoke tracing")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/swapkit/config.cue)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
