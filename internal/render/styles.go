// Package render provides terminal output for the pwshcomplete CLI.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorCyan   = lipgloss.Color("12") // Command names
	ColorYellow = lipgloss.Color("11") // Option and flag aliases
	ColorGreen  = lipgloss.Color("10") // Success indicator
	ColorRed    = lipgloss.Color("9")  // Error indicator
	ColorGray   = lipgloss.Color("8")  // Help text, tree guides
)

const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolHint    = "→"
)

var (
	// CommandStyle is used for command and subcommand names
	CommandStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// ArgStyle is used for option and flag aliases
	ArgStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// SuccessStyle is used for success indicators
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// ErrorStyle is used for error indicators
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

	// DimStyle is used for help text and tree guides
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)
)

// Success formats a success status line.
func Success(message string) string {
	return SuccessStyle.Render(SymbolSuccess) + " " + message
}

// Error formats an error status line.
func Error(message string) string {
	return ErrorStyle.Render(SymbolError+" "+message)
}

// Hint formats a dimmed hint line.
func Hint(message string) string {
	return DimStyle.Render(SymbolHint + " " + message)
}
