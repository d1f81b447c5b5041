package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/registry"
)

// CellEditor edits one cell in place. The editor kind follows the column's
// semantic type; every accepted change is reported back to the caller.
type CellEditor struct {
	open      bool
	rowID     models.RowID
	column    string
	desc      registry.Descriptor
	input     textinput.Model
	optionIdx int
	value     string
	shown     string // input text as of open or the last write
	now       func() time.Time
}

// NewCellEditor creates a closed editor
func NewCellEditor() *CellEditor {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 0
	return &CellEditor{
		input: ti,
		now:   time.Now,
	}
}

// Open starts editing column of the row with the stored value
func (ce *CellEditor) Open(rowID models.RowID, column, value string) tea.Cmd {
	ce.open = true
	ce.rowID = rowID
	ce.column = column
	ce.desc = registry.Lookup(column)
	ce.value = value
	ce.optionIdx = ce.desc.OptionIndex(value)

	ce.input.SetValue(ce.desc.Display(value))
	ce.input.CursorEnd()
	ce.shown = ce.input.Value()
	switch ce.desc.Editor() {
	case registry.EditorDate:
		ce.input.Placeholder = registry.DateLayout
	case registry.EditorURL:
		ce.input.Placeholder = "https://"
	default:
		ce.input.Placeholder = ""
	}
	if ce.desc.Editor() == registry.EditorSelect {
		ce.input.Blur()
		return nil
	}
	return ce.input.Focus()
}

// Close stops editing
func (ce *CellEditor) Close() {
	ce.open = false
	ce.input.Blur()
}

// IsOpen reports whether a cell is being edited
func (ce *CellEditor) IsOpen() bool {
	return ce.open
}

// Target returns the row and column being edited
func (ce *CellEditor) Target() (models.RowID, string) {
	return ce.rowID, ce.column
}

// Value returns the last value accepted by the editor
func (ce *CellEditor) Value() string {
	return ce.value
}

// HandleKey applies a key press. changed is true when the cell's stored
// value should become value.
func (ce *CellEditor) HandleKey(msg tea.KeyMsg) (value string, changed bool, cmd tea.Cmd) {
	if !ce.open {
		return "", false, nil
	}

	switch ce.desc.Editor() {
	case registry.EditorSelect:
		return ce.handleSelectKey(msg)
	case registry.EditorDate:
		return ce.handleDateKey(msg)
	default:
		ce.input, cmd = ce.input.Update(msg)
		text := ce.input.Value()
		if text == ce.shown {
			return "", false, cmd
		}
		ce.shown = text
		return ce.accept(ce.desc.Normalize(text), cmd)
	}
}

func (ce *CellEditor) handleSelectKey(msg tea.KeyMsg) (string, bool, tea.Cmd) {
	options := ce.desc.Options
	if len(options) == 0 {
		return "", false, nil
	}

	switch msg.String() {
	case "left", "up", "h", "k", "shift+tab":
		if ce.optionIdx <= 0 {
			ce.optionIdx = len(options) - 1
		} else {
			ce.optionIdx--
		}
	case "right", "down", "l", "j", " ", "tab":
		ce.optionIdx = (ce.optionIdx + 1) % len(options)
	default:
		return "", false, nil
	}
	return ce.accept(options[ce.optionIdx], nil)
}

func (ce *CellEditor) handleDateKey(msg tea.KeyMsg) (string, bool, tea.Cmd) {
	switch msg.String() {
	case "up":
		return ce.stepDate(0, 1)
	case "down":
		return ce.stepDate(0, -1)
	case "pgup":
		return ce.stepDate(1, 0)
	case "pgdown":
		return ce.stepDate(-1, 0)
	}

	var cmd tea.Cmd
	ce.input, cmd = ce.input.Update(msg)
	if ce.input.Value() == ce.shown {
		return "", false, cmd
	}
	text := strings.TrimSpace(ce.input.Value())
	if text == "" {
		ce.shown = ce.input.Value()
		return ce.accept("", cmd)
	}
	// partial input is kept in the field but not written
	formatted := registry.FormatDate(text)
	if formatted == "" {
		return "", false, cmd
	}
	ce.shown = ce.input.Value()
	return ce.accept(formatted, cmd)
}

func (ce *CellEditor) stepDate(months, days int) (string, bool, tea.Cmd) {
	base, ok := registry.ParseDate(ce.value)
	if !ok {
		n := ce.now()
		base = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
		months, days = 0, 0
	}
	next := base.AddDate(0, months, days).Format(registry.DateLayout)
	ce.input.SetValue(next)
	ce.input.CursorEnd()
	ce.shown = next
	return ce.accept(next, nil)
}

func (ce *CellEditor) accept(value string, cmd tea.Cmd) (string, bool, tea.Cmd) {
	if value == ce.value {
		return "", false, cmd
	}
	ce.value = value
	return value, true, cmd
}

// Render draws the editor popup body
func (ce *CellEditor) Render() string {
	var sb strings.Builder
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	switch ce.desc.Editor() {
	case registry.EditorSelect:
		for i, opt := range ce.desc.Options {
			label := badge(ce.desc.Style(opt), opt)
			if i == ce.optionIdx {
				sb.WriteString("› " + label)
			} else {
				sb.WriteString("  " + label)
			}
			sb.WriteString("\n")
		}
		sb.WriteString(dim.Render("←/→ change • enter/esc done"))
	case registry.EditorDate:
		sb.WriteString(ce.input.View())
		sb.WriteString("\n")
		sb.WriteString(dim.Render("↑/↓ day • pgup/pgdn month • enter/esc done"))
	default:
		sb.WriteString(ce.input.View())
		sb.WriteString("\n")
		sb.WriteString(dim.Render("changes apply as you type • enter/esc done"))
	}
	return sb.String()
}

// Title returns the popup title
func (ce *CellEditor) Title() string {
	return "Edit " + ce.desc.Header
}

// UpdateInput forwards non-key messages such as cursor blinks
func (ce *CellEditor) UpdateInput(msg tea.Msg) tea.Cmd {
	if !ce.open || ce.desc.Editor() == registry.EditorSelect {
		return nil
	}
	var cmd tea.Cmd
	ce.input, cmd = ce.input.Update(msg)
	return cmd
}
