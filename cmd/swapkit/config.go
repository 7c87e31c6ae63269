// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"swapkit-cli/internal/config"
)

// configCmd groups configuration inspection commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect swapkit configuration",
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, path, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		source := path
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintln(out, TitleStyle.Render("swapkit configuration"))
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("source:"), source)
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("ui.color_scheme:"), cfg.UI.ColorScheme)
		fmt.Fprintf(out, "  %s %t\n", SubtitleStyle.Render("ui.verbose:"), cfg.UI.Verbose)
		fmt.Fprintf(out, "  %s %v\n", SubtitleStyle.Render("demo.scenarios:"), cfg.Demo.Scenarios)
		fmt.Fprintf(out, "  %s %v\n", SubtitleStyle.Render("demo.sample_values:"), cfg.Demo.SampleValues)
		return nil
	},
}

// configPathCmd prints where the configuration was loaded from.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the resolved config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, path, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("no config file found (running on defaults)"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
