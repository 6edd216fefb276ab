// Package query owns the text box the user types questions into, plus the
// preset example questions.
package query

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"legalsearch/internal/domain"
)

// Placeholder is shown while the box is empty
const Placeholder = "Enter your query..."

// Controller wraps a text input with example shortcuts and submission.
// text is the query as given; the text input only displays it, and its own
// sanitized value takes over once the user edits the box.
type Controller struct {
	input    textinput.Model
	text     string
	examples []string
	next     int // index NextExample will pick
	seq      uint64
}

// NewController creates a focused controller. examples must hold at least one entry;
// callers pass config.Config.Examples, which always has defaults.
func NewController(examples []string) *Controller {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return &Controller{
		input:    ti,
		examples: append([]string(nil), examples...),
	}
}

// QueryText returns the current text verbatim
func (c *Controller) QueryText() string {
	return c.text
}

// SetQueryText replaces the text exactly as given
func (c *Controller) SetQueryText(text string) {
	c.text = text
	c.input.SetValue(text)
	c.input.CursorEnd()
}

// SelectExample is SetQueryText for preset shortcuts
func (c *Controller) SelectExample(text string) {
	c.SetQueryText(text)
}

// Examples returns the configured example questions
func (c *Controller) Examples() []string {
	return c.examples
}

// SelectExampleAt picks the i-th example (zero-based). Out of range is a no-op.
func (c *Controller) SelectExampleAt(i int) bool {
	if i < 0 || i >= len(c.examples) {
		return false
	}
	c.SelectExample(c.examples[i])
	c.next = (i + 1) % len(c.examples)
	return true
}

// NextExample cycles through the examples in order
func (c *Controller) NextExample() {
	if len(c.examples) == 0 {
		return
	}
	c.SelectExampleAt(c.next)
}

// Submit hands back the current text for searching and clears the box.
// Empty text is submitted as-is.
func (c *Controller) Submit() domain.Submission {
	c.seq++
	sub := domain.Submission{Seq: c.seq, Query: c.text}
	c.text = ""
	c.input.Reset()
	return sub
}

// SetWidth sizes the text box
func (c *Controller) SetWidth(w int) {
	c.input.Width = w
}

// Update forwards editing keys to the text input. Only an actual edit replaces
// the stored text; cursor moves and blinks leave it alone.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if after := c.input.Value(); after != before {
		c.text = after
	}
	return cmd
}

// View renders the text box
func (c *Controller) View() string {
	return c.input.View()
}
