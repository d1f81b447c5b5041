package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Sheet Manager

## Grid
| Key | Action |
|---|---|
| ↑ ↓ ← → (hjkl in vim mode) | Move the cursor |
| tab / shift+tab | Next / previous column |
| g / G | First / last row |
| enter / e | Edit the focused cell |
| s | Sort by the focused column (asc, desc, off) |
| w | Toggle cell wrap |

## Toolbar
| Key | Action |
|---|---|
| / | Search every field, live |
| esc | Clear the search |
| a | Add a row |
| c | Add a column |
| v | Show or hide columns |
| i | Import a CSV file |
| x | Export (CSV, JSON, JSONL, SQLite) |
| y / Y | Copy cell / row |
| t | Status and priority counts for the shown rows |
| m | Recent messages, errors included (c clears) |

## Editing
Changes are written as you type. Dates take ` + "`YYYY-MM-DD`" + ` and step with ↑ ↓ (a day) or pgup pgdown (a month).
Status and priority cycle with ← →.

Press **?** or **esc** to close, **ctrl+c** to quit.

## Key bindings
`

// HelpModal shows the key reference
type HelpModal struct {
	visible  bool
	width    int
	rendered string
	bindings string // full help for the active key map
}

// NewHelpModal creates a new help modal
func NewHelpModal() *HelpModal {
	return &HelpModal{width: 80}
}

// SetVisible toggles visibility
func (hm *HelpModal) SetVisible(visible bool) {
	hm.visible = visible
}

// SetBindings sets the key binding table shown under the reference
func (hm *HelpModal) SetBindings(bindings string) {
	hm.bindings = bindings
}

// Render renders the help modal
func (hm *HelpModal) Render(width, height int) string {
	if !hm.visible {
		return ""
	}

	content := strings.TrimRight(hm.content(maxInt(40, width-8)), "\n")
	if hm.bindings != "" {
		content += "\n\n" + hm.bindings
	}
	lines := strings.Split(content, "\n")
	if height > 4 && len(lines) > height-4 {
		lines = lines[:height-4]
	}

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(0, 1)
	return style.Render(strings.Join(lines, "\n"))
}

// content renders the markdown once per width
func (hm *HelpModal) content(width int) string {
	if hm.rendered != "" && hm.width == width {
		return hm.rendered
	}
	hm.width = width
	hm.rendered = renderMarkdown(helpMarkdown, width)
	return hm.rendered
}

func renderMarkdown(content string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
