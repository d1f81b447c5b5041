package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/registry"
)

// SummaryBuilder counts the values of an enum column over a set of rows
type SummaryBuilder struct {
	column string
	order  []string
}

// NewSummaryBuilder creates a builder for column. Values are listed in the
// column's option order, then any other value in first-seen order.
func NewSummaryBuilder(column string) *SummaryBuilder {
	return &SummaryBuilder{
		column: column,
		order:  append([]string(nil), registry.Lookup(column).Options...),
	}
}

// Column returns the summarized column id
func (sb *SummaryBuilder) Column() string {
	return sb.column
}

// BuildDistribution counts each value of the column. Blank values are skipped.
func (sb *SummaryBuilder) BuildDistribution(rows []models.Row) map[string]int {
	distribution := make(map[string]int)
	for _, row := range rows {
		if v := strings.TrimSpace(row.Get(sb.column)); v != "" {
			distribution[v]++
		}
	}
	return distribution
}

// keys returns the values of distribution in display order
func (sb *SummaryBuilder) keys(distribution map[string]int) []string {
	out := make([]string, 0, len(distribution))
	seen := make(map[string]bool, len(distribution))
	for _, v := range sb.order {
		if distribution[v] > 0 {
			out = append(out, v)
			seen[v] = true
		}
	}
	var extra []string
	for v, n := range distribution {
		if !seen[v] && n > 0 {
			extra = append(extra, v)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// RenderCompact renders a one-line "Value n" list with badge colors
func (sb *SummaryBuilder) RenderCompact(distribution map[string]int) string {
	desc := registry.Lookup(sb.column)
	parts := make([]string, 0, len(distribution))
	for _, v := range sb.keys(distribution) {
		parts = append(parts, fmt.Sprintf("%s %d", badge(desc.Style(v), v), distribution[v]))
	}
	return strings.Join(parts, "  ")
}

// RenderDistributionBar renders one bar per value, scaled to maxWidth
func (sb *SummaryBuilder) RenderDistributionBar(distribution map[string]int, maxWidth int) string {
	maxCount := 0
	for _, count := range distribution {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		return "No data"
	}

	desc := registry.Lookup(sb.column)
	var result strings.Builder
	for _, v := range sb.keys(distribution) {
		count := distribution[v]
		barLength := (count * maxWidth) / maxCount
		if barLength < 1 {
			barLength = 1
		}
		color, ok := badgeColors[desc.Style(v)]
		bar := strings.Repeat("█", barLength)
		if ok {
			bar = lipgloss.NewStyle().Foreground(color).Render(bar)
		}
		result.WriteString(fmt.Sprintf("%-14s %s %d\n", truncateLine(v, 14), bar, count))
	}
	return result.String()
}
