// Package terminal reports whether the installer is attached to a live terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals.
// The first-run configuration script reads answers from stdin, so provisioning
// refuses to reach that stage without one.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
