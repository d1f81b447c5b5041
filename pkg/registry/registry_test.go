package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/sheet-manager-tui/pkg/models"
)

func TestLookupBuiltins(t *testing.T) {
	tests := []struct {
		id     string
		header string
		typ    SemanticType
		editor EditorKind
	}{
		{"job", "Job Request", TypeText, EditorText},
		{"submitted", "Submitted", TypeDate, EditorDate},
		{"status", "Status", TypeStatus, EditorSelect},
		{"submitter", "Submitter", TypeText, EditorText},
		{"url", "URL", TypeURL, EditorURL},
		{"assigned", "Assigned", TypeText, EditorText},
		{"priority", "Priority", TypePriority, EditorSelect},
		{"dueDate", "Due Date", TypeDate, EditorDate},
		{"value", "Est. Value", TypeText, EditorText},
	}

	for _, tt := range tests {
		d := Lookup(tt.id)
		assert.Equal(t, tt.id, d.ID)
		assert.Equal(t, tt.header, d.Header, tt.id)
		assert.Equal(t, tt.typ, d.Type, tt.id)
		assert.Equal(t, tt.editor, d.Editor(), tt.id)
		assert.True(t, IsBuiltin(tt.id))
	}
}

func TestLookupUnknownFallsBackToText(t *testing.T) {
	for _, id := range []string{"notes", "Status", "", "due date"} {
		d := Lookup(id)
		assert.Equal(t, TypeText, d.Type, id)
		assert.Equal(t, id, d.Header, id)
		assert.Equal(t, EditorText, d.Editor(), id)
		assert.Empty(t, d.Options)
		assert.False(t, IsBuiltin(id), id)
	}
}

func TestLookupIsStable(t *testing.T) {
	a := Lookup("status")
	a.Options[0] = "mutated"

	b := Lookup("status")
	assert.Equal(t, models.StatusValues, b.Options)
	assert.Equal(t, "Need to start", models.StatusValues[0])
}

func TestEnumOptions(t *testing.T) {
	assert.Equal(t, []string{"Need to start", "In-process", "Complete", "Blocked"}, Lookup("status").Options)
	assert.Equal(t, []string{"High", "Medium", "Low"}, Lookup("priority").Options)
	assert.Equal(t, 2, Lookup("status").OptionIndex("Complete"))
	assert.Equal(t, -1, Lookup("priority").OptionIndex("Urgent"))
}

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		value string
		want  StyleTag
	}{
		{"In-process", StyleWarning},
		{"Need to start", StyleInfo},
		{"Complete", StyleSuccess},
		{"Blocked", StyleAlert},
		{"blocked", StyleNone},
		{"", StyleNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusStyle(tt.value), tt.value)
		assert.Equal(t, tt.want, Lookup("status").Style(tt.value), tt.value)
	}
}

func TestPriorityStyle(t *testing.T) {
	tests := []struct {
		value string
		want  StyleTag
	}{
		{"High", StyleAlert},
		{"Medium", StyleWarning},
		{"Low", StyleSuccess},
		{"Urgent", StyleNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityStyle(tt.value), tt.value)
		assert.Equal(t, tt.want, Lookup("priority").Style(tt.value), tt.value)
	}
	assert.Equal(t, StyleNone, Lookup("job").Style("High"))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-11-15", "2024-11-15"},
		{"2024-11-15T10:30:00Z", "2024-11-15"},
		{"2024-11-15T10:30:00", "2024-11-15"},
		{"2024/11/15", "2024-11-15"},
		{"11/15/2024", "2024-11-15"},
		{"Nov 15, 2024", "2024-11-15"},
		{"November 15, 2024", "2024-11-15"},
		{"15 Nov 2024", "2024-11-15"},
		{"  2024-11-15 ", "2024-11-15"},
		{"", ""},
		{"not a date", ""},
		{"15-11-2024", ""},
		{"2024-13-40", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func TestDisplayAndNormalize(t *testing.T) {
	date := Lookup("dueDate")
	assert.Equal(t, "2024-01-02", date.Display("Jan 2, 2024"))
	assert.Equal(t, "", date.Display("garbage"))
	assert.Equal(t, "", date.Normalize("garbage"))

	url := Lookup("url")
	assert.Equal(t, "https://example.com", url.Normalize("  https://example.com "))

	text := Lookup("job")
	assert.Equal(t, "  padded ", text.Normalize("  padded "))
	assert.Equal(t, "  padded ", text.Display("  padded "))
}

func TestBuiltinIDs(t *testing.T) {
	ids := BuiltinIDs()
	assert.Equal(t, models.DefaultColumns, ids)

	ids[0] = "changed"
	assert.Equal(t, "job", models.DefaultColumns[0])
}
