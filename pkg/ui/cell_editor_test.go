package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbletea"

	"github.com/user/sheet-manager-tui/pkg/models"
)

func TestCellEditorOpenClose(t *testing.T) {
	ce := NewCellEditor()
	if ce.IsOpen() {
		t.Error("New editor should be closed")
	}

	ce.Open("row-1", "assigned", "Kim")
	if !ce.IsOpen() {
		t.Fatal("Editor should be open")
	}
	if id, col := ce.Target(); id != "row-1" || col != "assigned" {
		t.Errorf("Unexpected target %s/%s", id, col)
	}
	if ce.Title() != "Edit Assigned" {
		t.Errorf("Unexpected title %q", ce.Title())
	}

	ce.Close()
	if _, changed, _ := ce.HandleKey(keyRune('x')); changed {
		t.Error("Closed editor should ignore keys")
	}
}

func TestCellEditorText(t *testing.T) {
	ce := NewCellEditor()
	ce.Open("row-1", "job", "Audi")

	value, changed, _ := ce.HandleKey(keyRune('t'))
	if !changed || value != "Audit" {
		t.Errorf("Expected Audit, got %q (changed=%v)", value, changed)
	}

	if _, changed, _ := ce.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}); changed {
		t.Error("Cursor movement should not report a change")
	}
}

func TestCellEditorURLTrims(t *testing.T) {
	ce := NewCellEditor()
	ce.Open("row-1", "url", "")

	var value string
	for _, msg := range runes(" https://x.io") {
		if v, changed, _ := ce.HandleKey(msg); changed {
			value = v
		}
	}
	if value != "https://x.io" {
		t.Errorf("Expected trimmed URL, got %q", value)
	}
}

func TestCellEditorSelectCycles(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		start    string
		keys     []tea.KeyMsg
		expected string
	}{
		{"status forward wraps", "status", models.StatusBlocked, []tea.KeyMsg{rightKey}, models.StatusNeedToStart},
		{"status back", "status", models.StatusComplete, []tea.KeyMsg{{Type: tea.KeyLeft}}, models.StatusInProcess},
		{"priority space", "priority", models.PriorityHigh, []tea.KeyMsg{keyRune(' ')}, models.PriorityMedium},
		{"empty value starts at first", "priority", "", []tea.KeyMsg{downKey}, models.PriorityHigh},
		{"empty value back goes to last", "status", "", []tea.KeyMsg{upKey}, models.StatusBlocked},
		{"unknown value forward", "status", "Waiting", []tea.KeyMsg{keyRune('l')}, models.StatusNeedToStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := NewCellEditor()
			ce.Open("row-1", tt.column, tt.start)

			var value string
			for _, msg := range tt.keys {
				value, _, _ = ce.HandleKey(msg)
			}
			if value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, value)
			}
		})
	}
}

func TestCellEditorSelectIgnoresTyping(t *testing.T) {
	ce := NewCellEditor()
	ce.Open("row-1", "status", models.StatusBlocked)

	if _, changed, _ := ce.HandleKey(keyRune('z')); changed {
		t.Error("Typing should not change a select cell")
	}
}

func TestCellEditorDateStepping(t *testing.T) {
	ce := NewCellEditor()
	ce.now = func() time.Time { return time.Date(2025, 3, 9, 15, 0, 0, 0, time.Local) }

	ce.Open("row-1", "dueDate", "")
	value, changed, _ := ce.HandleKey(upKey)
	if !changed || value != "2025-03-09" {
		t.Fatalf("First step from empty should give today, got %q", value)
	}

	tests := []struct {
		key      tea.KeyMsg
		expected string
	}{
		{upKey, "2025-03-10"},
		{downKey, "2025-03-09"},
		{tea.KeyMsg{Type: tea.KeyPgUp}, "2025-04-09"},
		{tea.KeyMsg{Type: tea.KeyPgDown}, "2025-03-09"},
	}
	for _, tt := range tests {
		value, _, _ = ce.HandleKey(tt.key)
		if value != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.key.String(), tt.expected, value)
		}
	}
}

func TestCellEditorDateClearing(t *testing.T) {
	ce := NewCellEditor()
	ce.Open("row-1", "dueDate", "2024-01-31")

	var value string
	var changed bool
	for i := 0; i < len("2024-01-31"); i++ {
		value, changed, _ = ce.HandleKey(backspaceKey)
	}
	if !changed || value != "" {
		t.Errorf("Emptied field should clear the date, got %q (changed=%v)", value, changed)
	}
}

func TestCellEditorCursorMovesDoNotWrite(t *testing.T) {
	tests := []struct {
		column string
		value  string
	}{
		{"job", "a\tb"},
		{"job", strings.Repeat("y", 1500)},
		{"dueDate", "next week"},
		{"dueDate", "2024-01-31T10:00:00Z"},
	}

	for _, tt := range tests {
		ce := NewCellEditor()
		ce.Open("row-1", tt.column, tt.value)

		for _, msg := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyHome}} {
			if _, changed, _ := ce.HandleKey(msg); changed {
				t.Errorf("%s %q: %s should not write", tt.column, truncateLine(tt.value, 20), msg.String())
			}
		}
	}
}

func TestCellEditorLongValueNotTruncated(t *testing.T) {
	ce := NewCellEditor()
	long := strings.Repeat("z", 1500)
	ce.Open("row-1", "job", long)

	value, changed, _ := ce.HandleKey(keyRune('!'))
	if !changed || value != long+"!" {
		t.Errorf("Expected full value plus typed rune, got %d chars", len(value))
	}
}

func TestCellEditorPartialDateThenCursorMove(t *testing.T) {
	ce := NewCellEditor()
	ce.Open("row-1", "dueDate", "2024-01-31")

	if _, changed, _ := ce.HandleKey(backspaceKey); changed {
		t.Error("Partial date should not be written")
	}
	if _, changed, _ := ce.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}); changed {
		t.Error("Cursor move on a partial date should not write")
	}
	if value, changed, _ := ce.HandleKey(keyRune('x')); changed {
		t.Errorf("Text that is not a date should not write, got %q", value)
	}
}
