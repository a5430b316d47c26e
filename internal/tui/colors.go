package tui

import "github.com/balkashynov/prodo/internal/models"

// Color constants for prodo TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
	ColorInfo    = "#3B82F6"
)

// QuadrantColor is the border color of a matrix quadrant
func QuadrantColor(q models.Quadrant) string {
	switch q {
	case models.QuadrantUrgentImportant:
		return ColorError
	case models.QuadrantNotUrgentImportant:
		return ColorInfo
	case models.QuadrantUrgentNotImportant:
		return ColorWarning
	default:
		return ColorDisabledText
	}
}

// PriorityBadge returns the icon and color used for a priority
func PriorityBadge(p models.Priority) (string, string) {
	switch p {
	case models.PriorityHigh:
		return "🔴", ColorError
	case models.PriorityMedium:
		return "🟡", ColorWarning
	case models.PriorityLow:
		return "🟢", ColorSecondaryText
	default:
		return "⚪", ColorDisabledText
	}
}
