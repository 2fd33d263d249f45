package typesview

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Card     lipgloss.Style
}

// DefaultTheme builds styles bound to r so color detection follows the
// destination writer instead of the process stdout.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Label:    r.NewStyle().Foreground(lipgloss.Color("63")),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
