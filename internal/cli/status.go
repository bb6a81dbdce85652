package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of status lines.
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

// DefaultTheme is the default yellow theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#ffd60a"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Status prints human oriented progress lines, styled when the writer is
// a terminal and plain otherwise.
type Status struct {
	w      io.Writer
	active lipgloss.Style
	detail lipgloss.Style
}

// NewStatus creates a Status writing to w, usually stderr.
func NewStatus(w io.Writer, t Theme) *Status {
	r := lipgloss.NewRenderer(w)
	return &Status{
		w:      w,
		active: r.NewStyle().Bold(true).Foreground(t.Primary),
		detail: r.NewStyle().Foreground(t.Dim),
	}
}

// Printf writes one status line.
func (s *Status) Printf(format string, args ...any) {
	fmt.Fprintln(s.w, s.active.Render(fmt.Sprintf(format, args...)))
}

// Detailf writes a dimmed secondary line.
func (s *Status) Detailf(format string, args ...any) {
	fmt.Fprintln(s.w, s.detail.Render(fmt.Sprintf(format, args...)))
}
