// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"swapkit-cli/internal/config"
	"swapkit-cli/internal/guide"
)

// explainCmd renders the Markdown guides.
var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Explain the mechanism behind the demonstrations",
	Long: `Render a guide about the behavior-delegation mechanism.

Without arguments, lists the available topics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, TitleStyle.Render("Available topics"))
		for _, topic := range guide.Topics() {
			g, err := guide.Lookup(topic)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %s %s\n",
				ActorStyle.Render(topic.String()),
				SubtitleStyle.Render("- "+g.Title()),
			)
		}
		return nil
	}

	cfg, _, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	g, err := guide.Lookup(guide.Topic(args[0]))
	if err != nil {
		return err
	}

	rendered, err := g.Render(glamourStyle(cfg.UI.ColorScheme))
	if err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}
	fmt.Fprintln(out, rendered)
	return nil
}

// glamourStyle maps the configured color scheme to a glamour style name.
// Glamour has no "auto" style, so auto falls back to dark.
func glamourStyle(scheme config.ColorScheme) string {
	if scheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
