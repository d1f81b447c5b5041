package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/user/sheet-manager-tui/pkg/csvcodec"
	"github.com/user/sheet-manager-tui/pkg/models"
)

// ExportFormat names an output file format
type ExportFormat string

const (
	FormatCSV    ExportFormat = "csv"
	FormatJSON   ExportFormat = "json"
	FormatJSONL  ExportFormat = "jsonl"
	FormatSQLite ExportFormat = "sqlite"
)

// ExportFormats lists the formats in menu order
var ExportFormats = []ExportFormat{FormatCSV, FormatJSON, FormatJSONL, FormatSQLite}

// Exporter writes the sheet's active columns to files
type Exporter struct {
	dir            string
	fileName       string
	lastExportPath string
}

// NewExporter creates an exporter writing into dir. An empty fileName means
// spreadsheet.csv; other formats reuse its base name.
func NewExporter(dir, fileName string) *Exporter {
	if strings.TrimSpace(fileName) == "" {
		fileName = csvcodec.DefaultFileName
	}
	return &Exporter{dir: dir, fileName: fileName}
}

// Dir returns the output directory
func (e *Exporter) Dir() string {
	return e.dir
}

// PathFor returns the destination path for a format
func (e *Exporter) PathFor(format ExportFormat) string {
	name := e.fileName
	if format != FormatCSV {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		name = base + extensionFor(format)
	}
	return filepath.Join(e.dir, name)
}

func extensionFor(format ExportFormat) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatSQLite:
		return ".db"
	default:
		return ".csv"
	}
}

// Export writes rows in format to PathFor(format) and returns the path
func (e *Exporter) Export(format ExportFormat, columns []string, rows []models.Row) (string, error) {
	path := e.PathFor(format)

	var err error
	switch format {
	case FormatCSV:
		err = e.ExportToCSV(columns, rows, path)
	case FormatJSON:
		err = e.ExportToJSON(columns, rows, path, true)
	case FormatJSONL:
		err = e.ExportToJSONL(columns, rows, path)
	case FormatSQLite:
		err = e.ExportToSQLite(columns, rows, path)
	default:
		err = fmt.Errorf("unknown export format: %s", format)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// ExportToCSV writes the sheet CSV layout. A sheet without rows still gets
// its header line.
func (e *Exporter) ExportToCSV(columns []string, rows []models.Row, path string) error {
	if len(columns) == 0 {
		return fmt.Errorf("no columns to export")
	}
	if err := csvcodec.WriteFile(path, columns, rows); err != nil {
		return err
	}
	e.lastExportPath = path
	return nil
}

// ExportToJSON writes an array of objects with keys in column order
func (e *Exporter) ExportToJSON(columns []string, rows []models.Row, path string, pretty bool) error {
	if len(columns) == 0 {
		return fmt.Errorf("no columns to export")
	}

	records := make([]record, len(rows))
	for i, row := range rows {
		records[i] = orderedRecord(columns, row.Fields)
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	e.lastExportPath = path
	return nil
}

// ExportToJSONL writes one object per line
func (e *Exporter) ExportToJSONL(columns []string, rows []models.Row, path string) error {
	if len(columns) == 0 {
		return fmt.Errorf("no columns to export")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	for _, row := range rows {
		data, err := json.Marshal(orderedRecord(columns, row.Fields))
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}

	e.lastExportPath = path
	return nil
}

// GetLastExportPath returns the path of the last export
func (e *Exporter) GetLastExportPath() string {
	return e.lastExportPath
}

// FileExists checks if a file exists
func (e *Exporter) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EstimateSize estimates the export file size in bytes
func (e *Exporter) EstimateSize(columns []string, rows []models.Row, format ExportFormat) int {
	if len(columns) == 0 {
		return 0
	}

	header := 0
	for _, col := range columns {
		header += len(col) + 1
	}

	body := 0
	for _, row := range rows {
		for _, col := range columns {
			body += len(row.Get(col))
		}
	}

	cells := len(rows) * len(columns)
	switch format {
	case FormatCSV:
		return header + body + cells*3
	case FormatJSON, FormatJSONL:
		return body + cells*6 + len(rows)*3 + header*len(rows)
	case FormatSQLite:
		// page overhead dominates small sheets
		return 8192 + header*2 + body + cells*2
	default:
		return 0
	}
}

// HumanSize formats EstimateSize for display
func (e *Exporter) HumanSize(columns []string, rows []models.Row, format ExportFormat) string {
	return humanize.Bytes(uint64(e.EstimateSize(columns, rows, format)))
}

// record marshals to a JSON object whose keys follow column order
type record struct {
	columns []string
	fields  models.Fields
}

func orderedRecord(columns []string, fields models.Fields) record {
	return record{columns: columns, fields: fields}
}

// MarshalJSON implements json.Marshaler
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.fields.Get(col))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
