package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusLevel separates plain notices from failures
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusError
)

// StatusMessage is a single status line entry
type StatusMessage struct {
	Text      string
	Level     StatusLevel
	Timestamp time.Time
	Duration  time.Duration // zero never expires
}

// StatusLog keeps the live messages shown on the status line, plus a
// longer history that outlives expiry
type StatusLog struct {
	messages    []StatusMessage
	history     []StatusMessage
	maxSize     int
	historySize int
	now         func() time.Time
}

// NewStatusLog creates an empty status log
func NewStatusLog() *StatusLog {
	return &StatusLog{
		messages:    []StatusMessage{},
		maxSize:     10,
		historySize: 50,
		now:         time.Now,
	}
}

// Info records a notice
func (sl *StatusLog) Info(text string, duration time.Duration) {
	sl.add(text, StatusInfo, duration)
}

// Error records a failure
func (sl *StatusLog) Error(text string, duration time.Duration) {
	sl.add(text, StatusError, duration)
}

func (sl *StatusLog) add(text string, level StatusLevel, duration time.Duration) {
	msg := StatusMessage{
		Text:      text,
		Level:     level,
		Timestamp: sl.now(),
		Duration:  duration,
	}
	sl.messages = append(sl.messages, msg)
	if len(sl.messages) > sl.maxSize {
		sl.messages = sl.messages[len(sl.messages)-sl.maxSize:]
	}
	sl.history = append(sl.history, msg)
	if len(sl.history) > sl.historySize {
		sl.history = sl.history[len(sl.history)-sl.historySize:]
	}
}

// ClearExpired removes expired messages
func (sl *StatusLog) ClearExpired() {
	now := sl.now()
	active := sl.messages[:0]
	for _, msg := range sl.messages {
		if msg.Duration == 0 || now.Sub(msg.Timestamp) < msg.Duration {
			active = append(active, msg)
		}
	}
	sl.messages = active
}

// Latest returns the most recent live message, or nil
func (sl *StatusLog) Latest() *StatusMessage {
	sl.ClearExpired()
	if len(sl.messages) == 0 {
		return nil
	}
	return &sl.messages[len(sl.messages)-1]
}

// HasErrors reports whether any live message is an error
func (sl *StatusLog) HasErrors() bool {
	sl.ClearExpired()
	for _, msg := range sl.messages {
		if msg.Level == StatusError {
			return true
		}
	}
	return false
}

// RenderLine renders the latest message to fit width
func (sl *StatusLog) RenderLine(width int) string {
	latest := sl.Latest()
	if latest == nil {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("150"))
	prefix := "✓ "
	if latest.Level == StatusError {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		prefix = "⚠ "
	}
	return style.Render(truncateLine(prefix+latest.Text, width))
}

// RenderList renders the message history, newest last, expired ones included
func (sl *StatusLog) RenderList(width, maxHeight int) string {
	if len(sl.history) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Recent messages"))
	sb.WriteString("\n")

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	count := minInt(len(sl.history), maxHeight)
	for _, msg := range sl.history[len(sl.history)-count:] {
		bullet := "•"
		if msg.Level == StatusError {
			bullet = errStyle.Render("⚠")
		}
		line := msg.Timestamp.Format("15:04:05") + " " + msg.Text
		sb.WriteString("  " + bullet + " ")
		sb.WriteString(truncateLine(line, width-4))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Clear removes all messages, history included
func (sl *StatusLog) Clear() {
	sl.messages = []StatusMessage{}
	sl.history = nil
}
