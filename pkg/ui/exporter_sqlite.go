package ui

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/user/sheet-manager-tui/pkg/models"
)

const sqliteTable = "sheet"

// ExportToSQLite writes rows into a fresh database file with one "sheet"
// table of TEXT columns. An existing file at path is replaced.
func (e *Exporter) ExportToSQLite(columns []string, rows []models.Row, path string) error {
	if len(columns) == 0 {
		return fmt.Errorf("no columns to export")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	defer db.Close()

	if err := loadSheetIntoSQLite(db, columns, rows); err != nil {
		return err
	}

	e.lastExportPath = path
	return nil
}

func loadSheetIntoSQLite(db *sql.DB, columns []string, rows []models.Row) error {
	names := sqliteColumnNames(columns)
	colDefs := make([]string, len(names))
	for i, name := range names {
		colDefs[i] = quoteIdent(name) + " TEXT"
	}
	if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE %s (%s)`, quoteIdent(sqliteTable), strings.Join(colDefs, ", "))); err != nil {
		return fmt.Errorf("create table %s: %w", sqliteTable, err)
	}

	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(`INSERT INTO %s VALUES (%s)`, quoteIdent(sqliteTable), strings.Join(placeholders, ","))

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		vals := make([]any, len(columns))
		for i, col := range columns {
			vals[i] = row.Get(col)
		}
		if _, err := stmt.Exec(vals...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert into %s: %w", sqliteTable, err)
		}
	}
	return tx.Commit()
}

// sqliteColumnNames resolves ids that differ only by case, which SQLite
// treats as the same column
func sqliteColumnNames(columns []string) []string {
	seen := make(map[string]int, len(columns))
	out := make([]string, len(columns))
	for i, col := range columns {
		name := col
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		key := strings.ToLower(name)
		if n := seen[key]; n > 0 {
			seen[key] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
			key = strings.ToLower(name)
		}
		seen[key]++
		out[i] = name
	}
	return out
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
