package views

import (
	"fmt"
	"strings"

	"legalsearch/internal/ui/state"
)

// ViewData contains everything needed to draw one frame
type ViewData struct {
	Width    int
	Height   int
	Title    string
	Input    string   // rendered query box
	Examples []string // preset questions, shown with their alt+N shortcut
	State    *state.ViewState
	Spinner  string // current spinner frame
	Help     string // rendered key legend, empty to hide
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render draws header, query box, examples, status, result, inspector and help, top to bottom
func (r *Renderer) Render(d ViewData) string {
	inner := d.Width - r.styles.Main.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}

	sections := []string{
		RenderHeader(d.Title, r.styles, inner),
		d.Input,
		r.renderExamples(d.Examples),
	}

	if status := r.renderStatus(d.State, d.Spinner); status != "" {
		sections = append(sections, status)
	}
	if result := RenderResult(d.State.LastResult, r.styles, inner); result != "" {
		sections = append(sections, result)
	}
	if inspector := RenderInspector(d.State.RawPanelVisible, d.State.LastRaw, d.State.LastResult, r.styles, inner); inspector != "" {
		sections = append(sections, inspector)
	}
	if d.Help != "" {
		sections = append(sections, r.styles.Help.Render(d.Help))
	}

	return r.styles.Main.Render(strings.Join(sections, "\n\n"))
}

func (r *Renderer) renderExamples(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	parts := make([]string, 0, len(examples))
	for i, ex := range examples {
		if i >= 9 {
			break
		}
		parts = append(parts, fmt.Sprintf("%s %s", r.styles.ExampleKey.Render(fmt.Sprintf("alt+%d", i+1)), ex))
	}
	return r.styles.Examples.Render("Examples: " + strings.Join(parts, "  "))
}

func (r *Renderer) renderStatus(s *state.ViewState, spinner string) string {
	var lines []string
	if s.InFlight > 0 {
		msg := "Searching…"
		if s.InFlight > 1 {
			msg = fmt.Sprintf("Searching… (%d in flight)", s.InFlight)
		}
		lines = append(lines, r.styles.StatusLoading.Render(strings.TrimSpace(spinner+" "+msg)))
	}
	if s.LastError != nil {
		lines = append(lines, r.styles.StatusError.Render("Search failed: "+s.LastError.Error()))
	}
	return strings.Join(lines, "\n")
}
