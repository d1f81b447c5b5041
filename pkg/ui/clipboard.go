package ui

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/user/sheet-manager-tui/pkg/csvcodec"
	"github.com/user/sheet-manager-tui/pkg/models"
)

// Copy formats for a whole row
const (
	CopyFormatCSV  = "csv"
	CopyFormatJSON = "json"
	CopyFormatTSV  = "tsv"
)

var errNoRow = errors.New("no row selected")

// ClipboardManager copies cells and rows to the system clipboard
type ClipboardManager struct {
	copyFormat string
	write      func(string) error
}

// NewClipboardManager creates a new clipboard manager
func NewClipboardManager() *ClipboardManager {
	return &ClipboardManager{
		copyFormat: CopyFormatCSV,
		write:      clipboard.WriteAll,
	}
}

// CopyCell copies a single value as is
func (cm *ClipboardManager) CopyCell(value string) (string, error) {
	if err := cm.write(value); err != nil {
		return "", fmt.Errorf("copy cell: %w", err)
	}
	return value, nil
}

// CopyRow copies the row's values for columns in the given format
func (cm *ClipboardManager) CopyRow(row *models.Row, columns []string, format string) (string, error) {
	if row == nil {
		return "", errNoRow
	}

	var content string
	switch format {
	case CopyFormatCSV:
		content = csvcodec.EncodeRow(columns, *row)
	case CopyFormatTSV:
		content = cm.formatTSV(row, columns)
	case CopyFormatJSON:
		data, err := json.Marshal(orderedRecord(columns, row.Fields))
		if err != nil {
			return "", fmt.Errorf("copy row: %w", err)
		}
		content = string(data)
	default:
		return "", fmt.Errorf("invalid format: %s", format)
	}

	if err := cm.write(content); err != nil {
		return "", fmt.Errorf("copy row: %w", err)
	}
	return content, nil
}

// CopyRowDefault copies a row with the default format
func (cm *ClipboardManager) CopyRowDefault(row *models.Row, columns []string) (string, error) {
	return cm.CopyRow(row, columns, cm.copyFormat)
}

func (cm *ClipboardManager) formatTSV(row *models.Row, columns []string) string {
	out := ""
	for i, col := range columns {
		if i > 0 {
			out += "\t"
		}
		out += row.Get(col)
	}
	return out
}

// SetCopyFormat sets the default row format
func (cm *ClipboardManager) SetCopyFormat(format string) error {
	switch format {
	case CopyFormatCSV, CopyFormatJSON, CopyFormatTSV:
		cm.copyFormat = format
		return nil
	}
	return fmt.Errorf("invalid format: %s", format)
}

// GetCopyFormat returns the current row format
func (cm *ClipboardManager) GetCopyFormat() string {
	return cm.copyFormat
}
