// Package styles provides the lipgloss styles used for fixhook's
// human-facing reports (check, doctor).
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	Success color.Color = lipgloss.Color("82")  // green
	Warning color.Color = lipgloss.Color("214") // orange
	Error   color.Color = lipgloss.Color("196") // red
	Muted   color.Color = lipgloss.Color("240") // dark gray
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Status symbols
const (
	SymbolOK   = "✓"
	SymbolWarn = "⚠"
	SymbolFail = "✗"
)

// OK renders a success line: "✓ text".
func OK(text string) string {
	return SuccessStyle.Render(SymbolOK) + " " + text
}

// Warn renders a warning line: "⚠ text".
func Warn(text string) string {
	return WarningStyle.Render(SymbolWarn) + " " + text
}

// Fail renders a failure line: "✗ text".
func Fail(text string) string {
	return ErrorStyle.Render(SymbolFail) + " " + text
}

// Hint renders secondary text such as suggestions.
func Hint(text string) string {
	return MutedStyle.Render(text)
}
