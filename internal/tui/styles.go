package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/vat-calculator/internal/domain"
)

const (
	keyWidth   = 7
	entryWidth = 3*keyWidth + 4
)

// Styles are the lipgloss styles of the keypad, derived from a theme
type Styles struct {
	Frame   lipgloss.Style
	Header  lipgloss.Style
	Entry   lipgloss.Style
	Key     lipgloss.Style
	Focused lipgloss.Style
	Action  lipgloss.Style
	Help    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles builds the keypad styles for theme
func NewStyles(theme domain.Theme) Styles {
	bg := lipgloss.Color(theme.Background)
	fg := lipgloss.Color(theme.Foreground)
	accent := lipgloss.Color(theme.Accent)
	button := lipgloss.Color(theme.Button)

	key := lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Foreground(fg).
		Background(button).
		Margin(0, 1, 1, 0)

	return Styles{
		Frame: lipgloss.NewStyle().
			Background(bg).
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			MarginBottom(1),
		Entry: lipgloss.NewStyle().
			Width(entryWidth).
			Align(lipgloss.Center).
			Foreground(fg).
			Background(lipgloss.Color(theme.EntryBackground)).
			Padding(1, 0).
			MarginBottom(1),
		Key:     key,
		Focused: key.Background(accent).Bold(true),
		Action: key.
			Width((entryWidth - 2) / 2).
			Padding(1, 0),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}).
			MarginTop(1),
		Success: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
	}
}
