package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBar       = "236" // Dark gray - status bar background
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	Box       lipgloss.Style // Standard box with rounded border (accent border)
	BoxDanger lipgloss.Style // Warning/error box (danger border)

	// Text styles
	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Label    lipgloss.Style // Modal label/content (default)
	Details  lipgloss.Style // Warning details (warning color)

	// Status bar
	Bar        lipgloss.Style // Full-width bar background
	BarTitle   lipgloss.Style // Title text inside the bar
	BarControl lipgloss.Style // Unfocused control
	BarFocused lipgloss.Style // Focused control
	BarNotice  lipgloss.Style // Transient notice (snapshot path, errors)

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Bar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorText)),
	BarTitle: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	BarControl: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorText)),
	BarFocused: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color("0")).
		Bold(true),
	BarNotice: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorWarning)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 2),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
// This factory standardizes list delegate configuration across the codebase.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}

// RenderButton draws a single push button.
func RenderButton(label string, focused bool) string {
	if focused {
		return Styles.ButtonFocused.Render(label)
	}
	return Styles.Button.Render(label)
}
