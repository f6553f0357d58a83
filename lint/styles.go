package lint

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting. Lipgloss degrades
// colors automatically based on terminal capabilities.
var (
	// styleCyan is used for file locations and section headers.
	styleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleYellow is used for caret indicators and warning counts.
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// styleGreen is used for the all-clear message.
	styleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleGray is used for linter names and hints.
	styleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
