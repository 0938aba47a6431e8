// Package tui renders the interactive dashboard: a selector of songs on
// the left, the aggregate overview or a single song's detail on the right.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the dashboard readable on light and dark
// terminals.
var (
	ColorHeader    = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"} //nolint:gochecknoglobals
	ColorLabel     = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#A0A0A0"} //nolint:gochecknoglobals
	ColorValue     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E6E6E6"} //nolint:gochecknoglobals
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"} //nolint:gochecknoglobals
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F0C674"} //nolint:gochecknoglobals
	ColorCritical  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"} //nolint:gochecknoglobals
	ColorBar       = lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#5DADE2"} //nolint:gochecknoglobals
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"} //nolint:gochecknoglobals
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#117A65", Dark: "#48C9B0"} //nolint:gochecknoglobals
)

// Shared styles consumed by the view renderers.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)           //nolint:gochecknoglobals
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)                       //nolint:gochecknoglobals
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)                       //nolint:gochecknoglobals
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)                       //nolint:gochecknoglobals
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorHighlight)                   //nolint:gochecknoglobals
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)                     //nolint:gochecknoglobals
	CritStyle   = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)         //nolint:gochecknoglobals
	BarStyle    = lipgloss.NewStyle().Foreground(ColorBar)                         //nolint:gochecknoglobals
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(ColorBorder) //nolint:gochecknoglobals

	// Selector styles.
	SelectedItemStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight) //nolint:gochecknoglobals
	AnnotatedMark     = InfoStyle.Render("●")                                     //nolint:gochecknoglobals
	PlainMark         = SubtleStyle.Render("○")                                   //nolint:gochecknoglobals
)
