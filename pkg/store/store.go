// Package store holds the authoritative rows and column set of a sheet.
//
// Rows are addressed by a RowID assigned when they enter the store, so edits
// issued from a filtered or sorted view always land on the intended row.
// The store is not safe for concurrent use; all mutations are expected to run
// on the UI event loop.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/user/sheet-manager-tui/pkg/models"
)

var (
	// ErrRowNotFound is returned when a RowID is not in the store
	ErrRowNotFound = errors.New("row not found")
	// ErrIndexOutOfRange is returned for a positional edit outside the row sequence
	ErrIndexOutOfRange = errors.New("row index out of range")
	// ErrEmptyColumn is returned when a column identifier is empty
	ErrEmptyColumn = errors.New("column identifier is empty")
)

// Store is the single source of truth for rows and columns
type Store struct {
	rows     []models.Row
	columns  []string
	known    []string
	newID    func() models.RowID
	defaults func(models.Fields)
}

// New creates a store with the given initial column set
func New(columns []string) *Store {
	return NewWithIDs(columns, func() models.RowID {
		return models.RowID(uuid.NewString())
	})
}

// NewWithIDs creates a store that mints row identifiers with idFn
func NewWithIDs(columns []string, idFn func() models.RowID) *Store {
	s := &Store{newID: idFn}
	s.columns = dedupe(columns)
	s.remember(s.columns...)
	return s
}

// SetRowDefaults installs a hook applied to every row created by AddRow,
// after the built-in defaults.
func (s *Store) SetRowDefaults(fn func(models.Fields)) {
	s.defaults = fn
}

// AddRow appends a row with default values and returns its identifier
func (s *Store) AddRow() models.RowID {
	fields := make(models.Fields, len(models.DefaultColumns)+len(s.columns))
	for _, col := range models.DefaultColumns {
		fields[col] = ""
	}
	for _, col := range s.columns {
		fields[col] = ""
	}
	fields[models.ColumnStatus] = models.StatusNeedToStart
	fields[models.ColumnPriority] = models.PriorityMedium
	if s.defaults != nil {
		s.defaults(fields)
	}

	id := s.newID()
	s.rows = append(s.rows, models.Row{ID: id, Fields: fields})
	return id
}

// AddColumn appends a new column and back-fills "" on every row.
// Empty, whitespace-only and already present names are ignored.
func (s *Store) AddColumn(name string) bool {
	if strings.TrimSpace(name) == "" || s.hasColumn(name) {
		return false
	}
	for i := range s.rows {
		s.rows[i].Fields[name] = ""
	}
	s.columns = append(s.columns, name)
	s.remember(name)
	return true
}

// ToggleColumn hides a present column or shows an absent one, returning the
// new visibility. Showing keeps existing row values and back-fills only rows
// that lack the key.
func (s *Store) ToggleColumn(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for i, col := range s.columns {
		if col == name {
			s.columns = append(s.columns[:i:i], s.columns[i+1:]...)
			return false
		}
	}
	for i := range s.rows {
		if _, ok := s.rows[i].Fields[name]; !ok {
			s.rows[i].Fields[name] = ""
		}
	}
	s.columns = append(s.columns, name)
	s.remember(name)
	return true
}

// SetCell replaces one value of the row identified by id
func (s *Store) SetCell(id models.RowID, column, value string) error {
	if column == "" {
		return ErrEmptyColumn
	}
	idx := s.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("set %s on %s: %w", column, id, ErrRowNotFound)
	}
	s.rows[idx].Fields[column] = value
	return nil
}

// SetCellAt replaces one value of the row at index in the unfiltered sequence
func (s *Store) SetCellAt(index int, column, value string) error {
	if column == "" {
		return ErrEmptyColumn
	}
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("set %s at %d: %w", column, index, ErrIndexOutOfRange)
	}
	s.rows[index].Fields[column] = value
	return nil
}

// ReplaceAll discards every row and column and installs the given data.
// Known columns reset to the built-ins plus the new set.
// Duplicate column identifiers keep their first position.
func (s *Store) ReplaceAll(records []models.Fields, columns []string) {
	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		fields := rec.Clone()
		rows = append(rows, models.Row{ID: s.newID(), Fields: fields})
	}
	cols := dedupe(columns)

	s.rows = rows
	s.columns = cols
	s.known = nil
	s.remember(models.DefaultColumns...)
	s.remember(cols...)
}

// Rows returns the rows in store order. The field maps are shared with the
// store and must be treated as read-only.
func (s *Store) Rows() []models.Row {
	return append([]models.Row(nil), s.rows...)
}

// Columns returns the active column identifiers in order
func (s *Store) Columns() []string {
	return append([]string(nil), s.columns...)
}

// KnownColumns returns every column identifier the store has held, in the
// order they were first seen
func (s *Store) KnownColumns() []string {
	return append([]string(nil), s.known...)
}

// HasColumn reports whether name is in the active column set
func (s *Store) HasColumn(name string) bool {
	return s.hasColumn(name)
}

// Row returns the row with the given identifier
func (s *Store) Row(id models.RowID) (models.Row, bool) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return models.Row{}, false
	}
	return s.rows[idx], true
}

// IndexOf returns the store position of id, or -1
func (s *Store) IndexOf(id models.RowID) int {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of rows
func (s *Store) Len() int {
	return len(s.rows)
}

func (s *Store) hasColumn(name string) bool {
	for _, col := range s.columns {
		if col == name {
			return true
		}
	}
	return false
}

func (s *Store) remember(names ...string) {
	for _, name := range names {
		found := false
		for _, k := range s.known {
			if k == name {
				found = true
				break
			}
		}
		if !found {
			s.known = append(s.known, name)
		}
	}
}

func dedupe(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if seen[col] {
			continue
		}
		seen[col] = true
		out = append(out, col)
	}
	return out
}
