package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// payloadPager shows text in the ov pager. It implements tea.ExecCommand so
// Bubble Tea releases the terminal while ov owns it and restores it afterwards.
type payloadPager struct {
	content string
}

// Run blocks until the user quits ov
func (p *payloadPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit; the TUI redraws itself
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the tty itself, so the standard streams are not used
func (p *payloadPager) SetStdin(io.Reader)  {}
func (p *payloadPager) SetStdout(io.Writer) {}
func (p *payloadPager) SetStderr(io.Writer) {}

// openPagerCmd runs the pager and reports back when it closes
func openPagerCmd(content string) tea.Cmd {
	return tea.Exec(&payloadPager{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
