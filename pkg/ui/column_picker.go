package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sheet-manager-tui/pkg/registry"
)

// ColumnPicker lists every column the sheet can show and marks the visible ones
type ColumnPicker struct {
	options []string
	visible map[string]bool
	cursor  int
}

// NewColumnPicker creates an empty picker
func NewColumnPicker() *ColumnPicker {
	return &ColumnPicker{
		options: []string{},
		visible: make(map[string]bool),
	}
}

// Sync rebuilds the option list: built-in ids first, then any other known
// column in the order the store first saw it
func (cp *ColumnPicker) Sync(known, visible []string) {
	cp.options = make([]string, 0, len(known)+len(registry.BuiltinIDs()))
	seen := make(map[string]bool)
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		cp.options = append(cp.options, id)
	}
	for _, id := range registry.BuiltinIDs() {
		add(id)
	}
	for _, id := range known {
		add(id)
	}

	cp.visible = make(map[string]bool, len(visible))
	for _, id := range visible {
		cp.visible[id] = true
	}
	cp.cursor = clampInt(cp.cursor, 0, len(cp.options)-1)
}

// Options returns the listed column ids
func (cp *ColumnPicker) Options() []string {
	return cp.options
}

// IsVisible reports whether id is in the active column set
func (cp *ColumnPicker) IsVisible(id string) bool {
	return cp.visible[id]
}

// CountVisible returns how many listed columns are active
func (cp *ColumnPicker) CountVisible() int {
	count := 0
	for _, id := range cp.options {
		if cp.visible[id] {
			count++
		}
	}
	return count
}

// Title names the popup with the shown/listed counts
func (cp *ColumnPicker) Title() string {
	return fmt.Sprintf("Columns (%d of %d shown)", cp.CountVisible(), len(cp.Options()))
}

// MoveUp moves the cursor one entry up
func (cp *ColumnPicker) MoveUp() {
	if cp.cursor > 0 {
		cp.cursor--
	}
}

// MoveDown moves the cursor one entry down
func (cp *ColumnPicker) MoveDown() {
	if cp.cursor < len(cp.options)-1 {
		cp.cursor++
	}
}

// Current returns the id under the cursor, "" when the list is empty
func (cp *ColumnPicker) Current() string {
	if len(cp.options) == 0 {
		return ""
	}
	return cp.options[cp.cursor]
}

// Render draws the picker body
func (cp *ColumnPicker) Render() string {
	var sb strings.Builder
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	for i, id := range cp.options {
		mark := "  "
		if cp.IsVisible(id) {
			mark = "✅"
		}
		header := registry.Lookup(id).Header
		line := mark + " " + header
		if header != id {
			line += " " + dim.Render("("+id+")")
		}
		if !registry.IsBuiltin(id) {
			line += " " + dim.Render("custom")
		}
		if i == cp.cursor {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(dim.Render("space/enter toggle • esc close"))
	return sb.String()
}
