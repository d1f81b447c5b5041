package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/registry"
)

const (
	gutterWidth    = 5
	columnGap      = " │ "
	minColumnWidth = 4
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	focusedHeader = headerStyle.Underline(true).Foreground(lipgloss.Color("14"))
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorCell    = lipgloss.NewStyle().Reverse(true)
	urlStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	badgeColors = map[registry.StyleTag]lipgloss.Color{
		registry.StyleInfo:    lipgloss.Color("33"),
		registry.StyleWarning: lipgloss.Color("178"),
		registry.StyleSuccess: lipgloss.Color("35"),
		registry.StyleAlert:   lipgloss.Color("160"),
	}
)

// badge colors a status or priority value by its style tag
func badge(tag registry.StyleTag, text string) string {
	color, ok := badgeColors[tag]
	if !ok || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(color).Render(text)
}

// Grid renders the current view of the sheet
type Grid struct {
	columnWidth int
	wrap        bool
}

// NewGrid creates a grid with a fixed column width
func NewGrid(columnWidth int) *Grid {
	return &Grid{columnWidth: maxInt(columnWidth, minColumnWidth)}
}

// SetWrap switches between truncated and wrapped cells
func (g *Grid) SetWrap(on bool) {
	g.wrap = on
}

// Wrap reports whether cells wrap
func (g *Grid) Wrap() bool {
	return g.wrap
}

// GridFrame is everything the grid needs to draw one frame
type GridFrame struct {
	Rows      []models.Row
	Columns   []string
	Sort      models.SortState
	CursorRow int
	CursorCol int
	Width     int
	Height    int
	Empty     string // shown when there are no rows
}

// HeaderLabel returns the column header with its sort marker
func HeaderLabel(column string, sort models.SortState) string {
	label := registry.Lookup(column).Header
	if sort.Column == column {
		switch sort.Direction {
		case models.SortAsc:
			label += " ↑"
		case models.SortDesc:
			label += " ↓"
		}
	}
	return label
}

// Render draws the header and as many rows as fit in frame.Height
func (g *Grid) Render(frame GridFrame) string {
	if len(frame.Columns) == 0 {
		return gutterStyle.Render("No columns visible. Press v to pick columns or c to add one.") + "\n"
	}

	first, last := g.columnWindow(len(frame.Columns), frame.CursorCol, frame.Width)
	columns := frame.Columns[first:last]

	var sb strings.Builder
	sb.WriteString(g.renderHeader(columns, first, frame))
	sb.WriteString(ruleStyle.Render(strings.Repeat("─", g.lineWidth(len(columns)))))
	sb.WriteString("\n")

	if len(frame.Rows) == 0 {
		sb.WriteString(gutterStyle.Render(frame.Empty))
		sb.WriteString("\n")
		return sb.String()
	}

	budget := maxInt(1, frame.Height-2)
	start := g.rowWindowStart(frame.Rows, columns, frame.CursorRow, budget)
	used := 0
	for i := start; i < len(frame.Rows) && used < budget; i++ {
		lines := g.renderRow(frame.Rows[i], i, columns, first, frame)
		if used+len(lines) > budget && used > 0 {
			break
		}
		for _, line := range lines {
			if used >= budget {
				break
			}
			sb.WriteString(line)
			sb.WriteString("\n")
			used++
		}
	}
	return sb.String()
}

func (g *Grid) renderHeader(columns []string, offset int, frame GridFrame) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		text := fitWidth(HeaderLabel(col, frame.Sort), g.columnWidth)
		if offset+i == frame.CursorCol {
			parts[i] = focusedHeader.Render(text)
		} else {
			parts[i] = headerStyle.Render(text)
		}
	}
	return gutterStyle.Render(fitWidth("#", gutterWidth)) + strings.Join(parts, columnGap) + "\n"
}

func (g *Grid) renderRow(row models.Row, index int, columns []string, offset int, frame GridFrame) []string {
	cells := make([][]string, len(columns))
	height := 1
	for i, col := range columns {
		cells[i] = g.cellLines(col, row.Get(col))
		height = maxInt(height, len(cells[i]))
	}

	selectedRow := index == frame.CursorRow
	out := make([]string, height)
	for line := 0; line < height; line++ {
		gutter := strings.Repeat(" ", gutterWidth)
		if line == 0 {
			marker := " "
			if selectedRow {
				marker = "›"
			}
			gutter = fitWidth(fmt.Sprintf("%s%d", marker, index+1), gutterWidth)
		}

		parts := make([]string, len(columns))
		for i, col := range columns {
			text := ""
			if line < len(cells[i]) {
				text = cells[i][line]
			}
			parts[i] = g.styleCell(col, row.Get(col), text, selectedRow && offset+i == frame.CursorCol)
		}
		out[line] = gutterStyle.Render(gutter) + strings.Join(parts, columnGap)
	}
	return out
}

// cellLines returns the display lines of a cell, each at most columnWidth wide
func (g *Grid) cellLines(column, value string) []string {
	text := registry.Lookup(column).Display(value)
	text = strings.ReplaceAll(text, "\r", "")
	if !g.wrap {
		return []string{truncateLine(strings.ReplaceAll(text, "\n", " "), g.columnWidth)}
	}

	// long words are broken hard once word wrapping is done
	wrapped := wrap.String(wordwrap.String(text, g.columnWidth), g.columnWidth)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = truncateLine(line, g.columnWidth)
	}
	return lines
}

func (g *Grid) styleCell(column, value, text string, selected bool) string {
	pad := strings.Repeat(" ", maxInt(0, g.columnWidth-runewidth.StringWidth(text)))
	if selected {
		return cursorCell.Render(text + pad)
	}
	if text == "" {
		return pad
	}

	desc := registry.Lookup(column)
	switch desc.Type {
	case registry.TypeStatus, registry.TypePriority:
		return badge(desc.Style(value), text) + pad
	case registry.TypeURL:
		return urlStyle.Render(text) + pad
	default:
		return text + pad
	}
}

func (g *Grid) lineWidth(columns int) int {
	if columns == 0 {
		return gutterWidth
	}
	return gutterWidth + columns*g.columnWidth + (columns-1)*runewidth.StringWidth(columnGap)
}

// columnWindow picks the columns that fit width while keeping the cursor column visible
func (g *Grid) columnWindow(total, cursor, width int) (int, int) {
	fit := total
	if width > 0 {
		step := g.columnWidth + runewidth.StringWidth(columnGap)
		fit = maxInt(1, (width-gutterWidth+runewidth.StringWidth(columnGap))/step)
	}
	if fit >= total {
		return 0, total
	}
	cursor = clampInt(cursor, 0, total-1)
	first := 0
	if cursor >= fit {
		first = cursor - fit + 1
	}
	return first, first + fit
}

// rowWindowStart returns the first row to draw so the cursor row fits in budget lines
func (g *Grid) rowWindowStart(rows []models.Row, columns []string, cursor, budget int) int {
	if cursor <= 0 || len(rows) == 0 {
		return 0
	}
	cursor = minInt(cursor, len(rows)-1)
	if !g.wrap {
		return maxInt(0, cursor-budget+1)
	}

	used := 0
	start := cursor
	for i := cursor; i >= 0; i-- {
		h := g.rowHeight(rows[i], columns)
		if used+h > budget {
			break
		}
		used += h
		start = i
	}
	return start
}

func (g *Grid) rowHeight(row models.Row, columns []string) int {
	height := 1
	for _, col := range columns {
		height = maxInt(height, len(g.cellLines(col, row.Get(col))))
	}
	return height
}
