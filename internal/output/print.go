package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for user-facing status lines. These are the single source of
// truth; never use inline lipgloss.Color literals elsewhere.
var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFailure = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Faint(true)
)

var (
	quiet   bool
	noColor bool
)

// SetQuiet suppresses all non-error user output.
func SetQuiet(q bool) {
	quiet = q
}

// SetNoColor disables styled output.
func SetNoColor(disable bool) {
	noColor = disable
}

func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

// Println prints a plain informational line to stdout.
func Println(msg string) {
	if quiet {
		return
	}
	fmt.Println(msg)
}

// Printf prints a formatted informational line to stdout.
func Printf(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Printf(format+"\n", args...)
}

// Success prints a success line with a leading checkmark.
func Success(msg string) {
	if quiet {
		return
	}
	fmt.Printf("%s %s\n", render(styleSuccess, "✓"), msg)
}

// Warning prints a warning line with a leading marker.
func Warning(msg string) {
	if quiet {
		return
	}
	fmt.Printf("%s %s\n", render(styleWarning, "⚠"), msg)
}

// Failure prints an error line to stderr with a leading marker.
func Failure(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", render(styleFailure, "✗"), msg)
}

// Detail prints a dimmed secondary line, indented under the previous one.
func Detail(msg string) {
	if quiet {
		return
	}
	fmt.Printf("  %s\n", render(styleDim, msg))
}
