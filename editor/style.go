package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	MenuBar   lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	StatusBar lipgloss.Style
	HelpBox   lipgloss.Style
}

// DefaultStyle is the classic blue editing screen with grey bars.
func DefaultStyle() Style {
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("7"))
	return Style{
		MenuBar:   bar,
		Title:     bar.Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("6")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("15")).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4")).
			Padding(0, 1),
	}
}
