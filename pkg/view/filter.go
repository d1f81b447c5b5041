package view

import (
	"strings"

	"github.com/user/sheet-manager-tui/pkg/models"
)

// Filter returns the rows that match term, in their original order.
// A row matches when any of its fields contains term, ignoring case. Every
// field present on the row takes part, whether or not its column is shown.
// An empty term matches all rows. The input is never modified.
func Filter(rows []models.Row, term string) []models.Row {
	out := make([]models.Row, 0, len(rows))
	if term == "" {
		return append(out, rows...)
	}

	needle := strings.ToLower(term)
	for _, row := range rows {
		if matches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

// Matches reports whether a single row matches term
func Matches(row models.Row, term string) bool {
	if term == "" {
		return true
	}
	return matches(row, strings.ToLower(term))
}

func matches(row models.Row, needle string) bool {
	for _, value := range row.Fields {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// Build derives the displayed sequence: filter first, then sort
func Build(rows []models.Row, term string, state models.SortState) []models.Row {
	return Sort(Filter(rows, term), state)
}

// IndexOf returns the position of id in rows, or -1
func IndexOf(rows []models.Row, id models.RowID) int {
	for i := range rows {
		if rows[i].ID == id {
			return i
		}
	}
	return -1
}
