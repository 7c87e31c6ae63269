// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all CLI
// output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorHighlight is blue - actor names and interactive elements.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorAccent is green - observable effects produced by variants.
	ColorAccent = lipgloss.Color("#10B981")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// TitleStyle is for primary headers and scenario titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ActorStyle is for the host or variant producing an effect.
	ActorStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// EffectStyle is for the observable effect itself.
	EffectStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)
