package view

import (
	"sort"
	"strings"

	"github.com/user/sheet-manager-tui/pkg/models"
)

// NextSort returns the state after activating column's header.
// A new column starts ascending; the same column cycles
// ascending, descending, unsorted.
func NextSort(state models.SortState, column string) models.SortState {
	if state.Column != column || state.Direction == models.SortNone {
		return models.SortState{Column: column, Direction: models.SortAsc}
	}
	switch state.Direction {
	case models.SortAsc:
		return models.SortState{Column: column, Direction: models.SortDesc}
	default:
		return models.SortState{}
	}
}

// Sort returns a copy of rows ordered by the sorted column's string value.
// Ties keep their input order.
func Sort(rows []models.Row, state models.SortState) []models.Row {
	out := append([]models.Row(nil), rows...)
	if !state.Active() {
		return out
	}

	col := state.Column
	desc := state.Direction == models.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		c := strings.Compare(out[i].Get(col), out[j].Get(col))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}
