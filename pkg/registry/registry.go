// Package registry maps column identifiers to their semantic type, header,
// editor and value presentation. Lookups are pure: the same identifier always
// yields the same descriptor, and unknown identifiers fall back to plain text.
package registry

import (
	"strings"
	"time"

	"github.com/user/sheet-manager-tui/pkg/models"
)

// SemanticType is the interpretation attached to a column
type SemanticType int

const (
	TypeText SemanticType = iota
	TypeURL
	TypeDate
	TypeStatus
	TypePriority
)

// String returns the type name
func (t SemanticType) String() string {
	switch t {
	case TypeURL:
		return "url"
	case TypeDate:
		return "date"
	case TypeStatus:
		return "status"
	case TypePriority:
		return "priority"
	default:
		return "text"
	}
}

// EditorKind selects the cell editor for a column
type EditorKind int

const (
	EditorText EditorKind = iota
	EditorURL
	EditorDate
	EditorSelect
)

// StyleTag is a presentation hint keyed by cell value
type StyleTag string

const (
	StyleNone    StyleTag = ""
	StyleInfo    StyleTag = "info"
	StyleWarning StyleTag = "warning"
	StyleSuccess StyleTag = "success"
	StyleAlert   StyleTag = "alert"
)

// DateLayout is the stored form of date cells
const DateLayout = "2006-01-02"

// Descriptor describes how a column is shown and edited
type Descriptor struct {
	ID      string
	Header  string
	Type    SemanticType
	Options []string // fixed members for enum types
}

var builtins = map[string]Descriptor{
	models.ColumnJob:       {ID: models.ColumnJob, Header: "Job Request", Type: TypeText},
	models.ColumnSubmitted: {ID: models.ColumnSubmitted, Header: "Submitted", Type: TypeDate},
	models.ColumnStatus:    {ID: models.ColumnStatus, Header: "Status", Type: TypeStatus, Options: models.StatusValues},
	models.ColumnSubmitter: {ID: models.ColumnSubmitter, Header: "Submitter", Type: TypeText},
	models.ColumnURL:       {ID: models.ColumnURL, Header: "URL", Type: TypeURL},
	models.ColumnAssigned:  {ID: models.ColumnAssigned, Header: "Assigned", Type: TypeText},
	models.ColumnPriority:  {ID: models.ColumnPriority, Header: "Priority", Type: TypePriority, Options: models.PriorityValues},
	models.ColumnDueDate:   {ID: models.ColumnDueDate, Header: "Due Date", Type: TypeDate},
	models.ColumnValue:     {ID: models.ColumnValue, Header: "Est. Value", Type: TypeText},
}

// Lookup returns the descriptor for a column identifier
func Lookup(id string) Descriptor {
	if d, ok := builtins[id]; ok {
		d.Options = append([]string(nil), d.Options...)
		return d
	}
	return Descriptor{ID: id, Header: id, Type: TypeText}
}

// IsBuiltin reports whether the identifier has a built-in descriptor
func IsBuiltin(id string) bool {
	_, ok := builtins[id]
	return ok
}

// BuiltinIDs returns the built-in identifiers in default column order
func BuiltinIDs() []string {
	return append([]string(nil), models.DefaultColumns...)
}

// Editor returns the editor kind for the column
func (d Descriptor) Editor() EditorKind {
	switch d.Type {
	case TypeURL:
		return EditorURL
	case TypeDate:
		return EditorDate
	case TypeStatus, TypePriority:
		return EditorSelect
	default:
		return EditorText
	}
}

// Style returns the presentation tag for a value of this column
func (d Descriptor) Style(value string) StyleTag {
	switch d.Type {
	case TypeStatus:
		return StatusStyle(value)
	case TypePriority:
		return PriorityStyle(value)
	default:
		return StyleNone
	}
}

// Display returns the text shown for a stored value
func (d Descriptor) Display(value string) string {
	if d.Type == TypeDate {
		return FormatDate(value)
	}
	return value
}

// Normalize converts an edited value to its stored form.
// Dates that cannot be parsed become "".
func (d Descriptor) Normalize(value string) string {
	switch d.Type {
	case TypeDate:
		return FormatDate(value)
	case TypeURL:
		return strings.TrimSpace(value)
	default:
		return value
	}
}

// OptionIndex returns the position of value in Options, -1 when absent
func (d Descriptor) OptionIndex(value string) int {
	for i, opt := range d.Options {
		if opt == value {
			return i
		}
	}
	return -1
}

// StatusStyle maps a status value to its style
func StatusStyle(status string) StyleTag {
	switch status {
	case models.StatusInProcess:
		return StyleWarning
	case models.StatusNeedToStart:
		return StyleInfo
	case models.StatusComplete:
		return StyleSuccess
	case models.StatusBlocked:
		return StyleAlert
	default:
		return StyleNone
	}
}

// PriorityStyle maps a priority value to its style
func PriorityStyle(priority string) StyleTag {
	switch priority {
	case models.PriorityHigh:
		return StyleAlert
	case models.PriorityMedium:
		return StyleWarning
	case models.PriorityLow:
		return StyleSuccess
	default:
		return StyleNone
	}
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseDate parses a date in any accepted layout
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate returns value as YYYY-MM-DD, or "" when it is not a date
func FormatDate(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}
