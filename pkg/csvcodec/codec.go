// Package csvcodec reads and writes the sheet's plain CSV layout.
//
// The layout is deliberately simple: a comma-joined header line, then one line
// per row with every value wrapped in double quotes and nothing escaped. Import splits on commas
// and strips one surrounding quote from each value, so values containing
// commas or quotes do not survive a round trip.
package csvcodec

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/user/sheet-manager-tui/pkg/models"
)

// DefaultFileName is the name used for exports
const DefaultFileName = "spreadsheet.csv"

// ErrEmptyInput is returned when there is no header line to import
var ErrEmptyInput = errors.New("csv input is empty")

// Encode renders the given columns of rows, in row order
func Encode(columns []string, rows []models.Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))
	for _, row := range rows {
		lines = append(lines, EncodeRow(columns, row))
	}
	return strings.Join(lines, "\n")
}

// EncodeRow renders one data line
func EncodeRow(columns []string, row models.Row) string {
	values := make([]string, len(columns))
	for i, col := range columns {
		values[i] = quote(row.Get(col))
	}
	return strings.Join(values, ",")
}

// Decode parses text into records and column identifiers.
// Ragged lines are accepted: missing trailing values read as "" and extra
// values are dropped.
func Decode(text string) ([]models.Fields, []string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, ErrEmptyInput
	}

	lines := strings.Split(text, "\n")
	headers := strings.Split(strings.TrimSuffix(lines[0], "\r"), ",")

	records := make([]models.Fields, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(strings.TrimSuffix(line, "\r"), ",")
		rec := make(models.Fields, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(values) {
				v = unquote(values[i])
			}
			rec[h] = v
		}
		records = append(records, rec)
	}
	return records, headers, nil
}

// WriteFile encodes rows to path
func WriteFile(path string, columns []string, rows []models.Row) error {
	if err := os.WriteFile(path, []byte(Encode(columns, rows)), 0o644); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and decodes the file at path
func ReadFile(path string) ([]models.Fields, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	records, headers, err := Decode(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("decode csv %s: %w", path, err)
	}
	return records, headers, nil
}

// quote wraps v in double quotes. Nothing inside is escaped.
func quote(v string) string {
	return `"` + v + `"`
}

func unquote(v string) string {
	v = strings.TrimPrefix(v, `"`)
	return strings.TrimSuffix(v, `"`)
}
