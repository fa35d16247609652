// Package views renders plain view-models into styled strings. Renderers
// are pure: data flows in as parameters, action callbacks flow in as
// closures, and no renderer reads application state or the bus.
package views

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases.
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay0
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	priceStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorAccent)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Foreground(colorBase).Background(colorLavender)
	buttonOff     = lipgloss.NewStyle().Padding(0, 2).Foreground(colorSubtext0).Background(colorSurface1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	focusCard     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1)
)

// categoryColor maps an item category to its accent color, defaulting to
// the neutral surface tone for unknown categories.
func categoryColor(category string) lipgloss.Color {
	switch category {
	case "soft-skill":
		return colorGreen
	case "hard-skill":
		return colorPeach
	case "button":
		return colorBlue
	case "additional":
		return colorSky
	case "other":
		return colorMauve
	default:
		return colorOverlay0
	}
}

// CategoryBadge renders a small colored category tag.
func CategoryBadge(category string) string {
	return lipgloss.NewStyle().
		Foreground(colorBase).
		Background(categoryColor(category)).
		Padding(0, 1).
		Render(category)
}
