// Package terminal reports whether the CLI is attached to a terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminalFunc = term.IsTerminal

// IsInteractive reports whether both stdin and stdout are terminals.
// Prompts and colored output are only used when this holds.
func IsInteractive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a terminal. A nil file is not.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminalFunc(int(f.Fd()))
}
