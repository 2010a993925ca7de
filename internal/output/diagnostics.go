package output

import (
	"fmt"
	"io"
)

// Diagnostics prints warnings and errors for the user.
type Diagnostics struct {
	w       io.Writer
	noColor bool
	scheme  *ColorScheme
}

// NewDiagnostics creates a printer writing to w. Colors are disabled when
// noColor is set or w is not a terminal.
func NewDiagnostics(w io.Writer, noColor bool) *Diagnostics {
	noColor = noColor || !IsTerminal(w)
	return &Diagnostics{
		w:       w,
		noColor: noColor,
		scheme:  newColorScheme(noColor),
	}
}

// Warn prints a non-fatal problem. Its signature matches
// config.WithWarningHandler.
func (d *Diagnostics) Warn(err error) {
	fmt.Fprintf(d.w, "%s %s %s\n", WarningIcon(d.noColor), d.scheme.Warning.Sprint("warning:"), err)
}

// Error prints a fatal problem.
func (d *Diagnostics) Error(err error) {
	fmt.Fprintf(d.w, "%s %s %s\n", ErrorIcon(d.noColor), d.scheme.Error.Sprint("error:"), err)
}

// Success prints a confirmation message.
func (d *Diagnostics) Success(msg string) {
	fmt.Fprintf(d.w, "%s %s\n", SuccessIcon(d.noColor), d.scheme.Success.Sprint(msg))
}
