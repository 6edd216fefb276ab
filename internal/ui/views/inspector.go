package views

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"legalsearch/internal/domain"
)

// NoResultsSentinel is shown by the inspector before any search has completed
const NoResultsSentinel = "No results yet"

// FormatPayload returns the inspector text: the raw body indented two spaces with
// the service's key order kept, or the sentinel when there is no result.
// This is a debugging aid, not a wire format.
func FormatPayload(raw []byte, result *domain.SearchResult) string {
	if result == nil {
		return NoResultsSentinel
	}

	var buf bytes.Buffer
	if len(raw) > 0 && json.Indent(&buf, raw, "", "  ") == nil {
		return buf.String()
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return NoResultsSentinel
	}
	return string(out)
}

// RenderInspector renders the raw payload panel. Hidden renders nothing.
// Lines longer than width are truncated; the pager shows them in full.
func RenderInspector(visible bool, raw []byte, result *domain.SearchResult, styles *Styles, width int) string {
	if !visible {
		return ""
	}

	text := FormatPayload(raw, result)
	if width > 0 {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, width, "…")
		}
		text = strings.Join(lines, "\n")
	}
	return styles.Inspector.Render(text)
}
