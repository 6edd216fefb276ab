package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	HeaderHint     lipgloss.Style
	Main           lipgloss.Style
	Examples       lipgloss.Style
	ExampleKey     lipgloss.Style
	QueryEcho      lipgloss.Style // echoed query, secondary emphasis
	Answer         lipgloss.Style // synthesized answer, primary emphasis
	CitationsLabel lipgloss.Style
	CitationText   lipgloss.Style
	Attribution    lipgloss.Style
	CitationItem   lipgloss.Style
	Inspector      lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusError    lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		HeaderHint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Main:       lipgloss.NewStyle().Padding(1, 2),
		Examples:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ExampleKey: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		QueryEcho: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245")), // gray
		Answer: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),
		CitationsLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		CitationText: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Attribution:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		CitationItem: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("238")),
		Inspector:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:          lipgloss.NewStyle().Faint(true),
	}
}
