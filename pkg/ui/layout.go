package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// placeOverlay draws popup centered over base, line by line
func placeOverlay(base, popup string, width, height int) string {
	baseLines := strings.Split(strings.TrimRight(base, "\n"), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	popupLines := strings.Split(strings.TrimRight(popup, "\n"), "\n")
	if len(popupLines) == 0 {
		return base
	}
	startRow := maxInt(1, (height-len(popupLines))/2)
	for i, line := range popupLines {
		row := startRow + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		leftPad := maxInt(0, (width-lipgloss.Width(line))/2)
		baseLines[row] = strings.Repeat(" ", leftPad) + line
	}
	return strings.Join(baseLines, "\n")
}

// popupBox frames content the way every modal is framed
func popupBox(title, content string, width int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(0, 1)
	if width > 0 {
		box = box.Width(width)
	}
	return box.Render(titleStyle.Render(title) + "\n" + content)
}

// fitWidth truncates s to width cells and pads it on the right
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// truncateLine shortens s to width cells with a trailing ellipsis
func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return minInt(maxInt(v, lo), hi)
}
