// Package typesview renders the domain type catalog as bordered cards.
package typesview

import (
	"fmt"
	"io"
	"strings"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Render writes one card per type, structs first, in catalog order.
func Render(w io.Writer, infos []domain.TypeInfo) error {
	theme := DefaultTheme(lipgloss.NewRenderer(w))

	cards := make([]string, 0, len(infos))
	for _, ti := range infos {
		cards = append(cards, theme.Card.Render(card(theme, ti)))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, cards...))
	return err
}

func card(theme Theme, ti domain.TypeInfo) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(ti.Name))
	b.WriteString(" ")
	b.WriteString(theme.Subtitle.Render("(" + ti.Kind + ")"))

	if len(ti.Embeds) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("embeds:"))
		b.WriteString(" " + strings.Join(ti.Embeds, ", "))
	}
	if len(ti.Satisfies) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("satisfies:"))
		b.WriteString(" " + strings.Join(ti.Satisfies, ", "))
	}
	return b.String()
}
