// Package styles holds the lipgloss styles shared by the calc commands.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	ResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	GradeStyles = map[string]lipgloss.Style{
		"A": lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		"B": lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
		"C": lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"D": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"F": lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// Renderer applies styles only when color output is enabled.
type Renderer struct {
	enabled bool
}

// New returns a Renderer. A disabled renderer returns text unchanged.
func New(enabled bool) *Renderer {
	return &Renderer{enabled: enabled}
}

// Enabled reports whether styling is applied.
func (r *Renderer) Enabled() bool {
	return r != nil && r.enabled
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.Enabled() {
		return s
	}
	return style.Render(s)
}

// Header renders a section heading such as the menu title.
func (r *Renderer) Header(s string) string { return r.render(HeaderStyle, s) }

// Result renders a successful result line.
func (r *Renderer) Result(s string) string { return r.render(ResultStyle, s) }

// Error renders a user-facing error line.
func (r *Renderer) Error(s string) string { return r.render(ErrorStyle, s) }

// Dim renders secondary text such as hints.
func (r *Renderer) Dim(s string) string { return r.render(DimStyle, s) }

// Bold renders emphasized text.
func (r *Renderer) Bold(s string) string { return r.render(BoldStyle, s) }

// Grade renders a letter grade in its band color.
func (r *Renderer) Grade(letter string) string {
	style, ok := GradeStyles[letter]
	if !ok {
		return letter
	}
	return r.render(style, letter)
}

// Box draws lines inside a rounded border.
func (r *Renderer) Box(lines []string) string {
	body := strings.Join(lines, "\n")
	if !r.Enabled() {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(body)
}

// Plain strips any ANSI escape sequences from s.
func Plain(s string) string {
	return ansi.Strip(s)
}
