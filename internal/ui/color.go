// Package ui provides terminal styling for status output.
package ui

import (
	"github.com/fatih/color"
)

// Color function types for styled output. Styling is dropped automatically
// when stdout is not a terminal or NO_COLOR is set.
var (
	// Success is used for a rewritten document (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Error is used for errors and failures (red).
	Error = color.New(color.FgRed).SprintFunc()
	// Warning is used for an out-of-date document in check mode (yellow).
	Warning = color.New(color.FgYellow).SprintFunc()
	// Dim is used when nothing changed (faint).
	Dim = color.New(color.Faint).SprintFunc()
)

// DisableColors disables all color output.
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output.
func EnableColors() {
	color.NoColor = false
}

// IsColorEnabled returns whether colors are currently enabled.
func IsColorEnabled() bool {
	return !color.NoColor
}
