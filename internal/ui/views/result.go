package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"legalsearch/internal/domain"
)

// CitationsLabel heads the citation list
const CitationsLabel = "Citations"

// AttributionPrefix precedes each citation's source
const AttributionPrefix = "— "

// RenderResult renders the last completed search: echoed query, answer, then the
// citations in the order the service returned them. A nil result renders nothing.
// width <= 0 disables wrapping.
func RenderResult(r *domain.SearchResult, styles *Styles, width int) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(wrap(styles.QueryEcho, width).Render(r.Query))
	b.WriteString("\n")
	b.WriteString(wrap(styles.Answer, width).Render(r.Response))
	b.WriteString("\n\n")
	b.WriteString(styles.CitationsLabel.Render(CitationsLabel))

	for _, c := range r.Citations {
		b.WriteString("\n")
		b.WriteString(RenderCitation(c, styles, width))
	}

	return b.String()
}

// RenderCitation renders one citation as "<text> — <source>"
func RenderCitation(c domain.Citation, styles *Styles, width int) string {
	line := styles.CitationText.Render(c.Text) + " " + styles.Attribution.Render(AttributionPrefix+c.Source)
	return wrap(styles.CitationItem, width).Render(line)
}

func wrap(s lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return s
	}
	return s.Width(width)
}
