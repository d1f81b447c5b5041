package models

// RowID identifies a row for as long as it lives in the store.
// It is opaque and carries no ordering.
type RowID string

// Fields maps column identifiers to cell values
type Fields map[string]string

// Get returns the value for a column, "" when the row lacks the key
func (f Fields) Get(column string) string {
	if f == nil {
		return ""
	}
	return f[column]
}

// Clone returns an independent copy of the field map
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Row is a single record of the sheet
type Row struct {
	ID     RowID
	Fields Fields
}

// Get returns the value for a column, "" when the row lacks the key
func (r Row) Get(column string) string {
	return r.Fields.Get(column)
}

// Built-in column identifiers
const (
	ColumnJob       = "job"
	ColumnSubmitted = "submitted"
	ColumnStatus    = "status"
	ColumnSubmitter = "submitter"
	ColumnURL       = "url"
	ColumnAssigned  = "assigned"
	ColumnPriority  = "priority"
	ColumnDueDate   = "dueDate"
	ColumnValue     = "value"
)

// DefaultColumns is the initial column set, in display order
var DefaultColumns = []string{
	ColumnJob,
	ColumnSubmitted,
	ColumnStatus,
	ColumnSubmitter,
	ColumnURL,
	ColumnAssigned,
	ColumnPriority,
	ColumnDueDate,
	ColumnValue,
}

// Status values
const (
	StatusNeedToStart = "Need to start"
	StatusInProcess   = "In-process"
	StatusComplete    = "Complete"
	StatusBlocked     = "Blocked"
)

// StatusValues in selector order
var StatusValues = []string{
	StatusNeedToStart,
	StatusInProcess,
	StatusComplete,
	StatusBlocked,
}

// Priority values
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// PriorityValues in selector order
var PriorityValues = []string{
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

// SortDirection is the display ordering applied to one column
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// String returns a short label for the direction
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// SortState names the sorted column. Only one column is sorted at a time.
type SortState struct {
	Column    string
	Direction SortDirection
}

// Active reports whether a sort is applied
func (s SortState) Active() bool {
	return s.Column != "" && s.Direction != SortNone
}

// UIState holds display-only state. The store owns rows and columns.
type UIState struct {
	SearchTerm  string
	CellWrap    bool
	Sort        SortState
	ActiveModal string // "none", "search", "edit", "addColumn", "columns", "import", "export", "help"
	CursorRow   int    // position in the current view
	CursorCol   int    // position in the column set
	CursorRowID RowID  // row the cursor is on, followed across view rebuilds
}

// AppState represents the complete application state outside the store
type AppState struct {
	UIState        UIState
	LastImportPath string
	ExportDir      string
	LastError      error
	IsReady        bool
}
