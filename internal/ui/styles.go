package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the viewer
const (
	ColorAccent    = "86"  // Cyan/green - titles, status
	ColorHighlight = "205" // Magenta - active tab, borders
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across the viewer.
var Styles = struct {
	Title       lipgloss.Style // main title
	TabActive   lipgloss.Style // the selected tab button
	TabInactive lipgloss.Style // every other tab button
	Box         lipgloss.Style // panel body border
	Status      lipgloss.Style // chart position indicator
	Normal      lipgloss.Style // normal text
	Muted       lipgloss.Style // dimmed text, hints
	Empty       lipgloss.Style // empty-panel message
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder(), true, true, false, true),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		Border(lipgloss.HiddenBorder(), true, true, false, true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
