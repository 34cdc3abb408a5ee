// SPDX-License-Identifier: MPL-2.0

package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by every styled line the CLI prints.
const (
	// ColorPrimary is purple, used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for descriptions and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, used for tool names and flags.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for the tool prefix of error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warnings that do not stop the tool.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for tool names and flags.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
