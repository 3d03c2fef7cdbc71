package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	BoldStyle    = lipgloss.NewStyle().Bold(true)
)

// PrintError writes the failure banner for an aborted run.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("ERROR!"))
	fmt.Fprintln(w, ErrorStyle.Render(err.Error()))
	fmt.Fprintln(w, ErrorStyle.Render("Exiting with error"))
}

// Success writes a success status line.
func Success(w io.Writer, text string) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("✔"), text)
}

// Failure writes a failure status line.
func Failure(w io.Writer, text string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("✖"), text)
}

// Warnf writes a "warning: ..." line.
func Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, WarnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
