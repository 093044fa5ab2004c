// Package notify shows user-visible messages in the terminal.
package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type Level int

const (
	Success Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Notifier delivers a message to the user.
type Notifier interface {
	Notify(level Level, message string)
}

// Terminal writes one line per notification to w.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	noColor bool
	badges  map[Level]lipgloss.Style
	text    lipgloss.Style
}

// NewTerminal builds a notifier writing to w. With noColor set, lines are
// plain "[LEVEL] message" text.
func NewTerminal(w io.Writer, noColor bool) *Terminal {
	r := lipgloss.NewRenderer(w)
	badge := r.NewStyle().Bold(true).Padding(0, 1)

	return &Terminal{
		w:       w,
		noColor: noColor,
		badges: map[Level]lipgloss.Style{
			Success: badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
			Info:    badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")),
			Warning: badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
			Error:   badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
		},
		text: r.NewStyle(),
	}
}

func (t *Terminal) Notify(level Level, message string) {
	label := strings.ToUpper(level.String())

	var line string
	if t.noColor {
		line = fmt.Sprintf("[%s] %s", label, message)
	} else {
		style, ok := t.badges[level]
		if !ok {
			style = t.badges[Info]
		}
		line = style.Render(label) + " " + t.text.Render(message)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, line)
}
