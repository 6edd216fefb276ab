package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SignOutHint is shown at the right edge of the header
const SignOutHint = "ctrl+o sign out"

// RenderHeader renders the navigation header: title on the left, sign-out hint on the right
func RenderHeader(title string, styles *Styles, width int) string {
	left := styles.Title.Render(title)
	right := styles.HeaderHint.Render(SignOutHint)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
