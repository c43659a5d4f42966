package view

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by every view.
type Styles struct {
	Title       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Remove      lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	muted := lipgloss.AdaptiveColor{Light: "#8A8F98", Dark: "#5C6370"}
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Remove:      lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Empty:       lipgloss.NewStyle().Italic(true).Foreground(muted),
		Help:        lipgloss.NewStyle().Foreground(muted),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}
