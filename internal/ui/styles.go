package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, spinner
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - failure icon
	ColorMuted     = "241" // Gray - hints, placeholder
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warning icon
)

const (
	IconPhoto   = "🖼"
	IconWarning = "⚠"
	IconPick    = "+"
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title      lipgloss.Style // Bold accent color
	Box        lipgloss.Style // Standard box with rounded border
	BoxCompact lipgloss.Style // Compact box for lists
	Frame      lipgloss.Style // Border around the image panel

	Selected    lipgloss.Style // Highlighted/selected items
	Muted       lipgloss.Style // Dimmed text
	Normal      lipgloss.Style // Normal text
	Hint        lipgloss.Style // Help/hint text
	Status      lipgloss.Style // Status line
	Empty       lipgloss.Style // Empty list text (muted, italic)
	Affordance  lipgloss.Style // The "Pick a photo" label
	Placeholder lipgloss.Style // Empty-state icon
	Warning     lipgloss.Style // Failure icon
	Spinner     lipgloss.Style // Loading spinner
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Affordance: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = true
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Muted
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
