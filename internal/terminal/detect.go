// Package terminal answers whether the process can hold a conversation with
// the user.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether both files are attached to a terminal. A pipe
// or redirection on either side disables prompting.
func Interactive(in, out *os.File) bool {
	return isTerminal(in) && isTerminal(out)
}

// Stdio reports whether the process's own stdin and stdout are terminals.
func Stdio() bool {
	return Interactive(os.Stdin, os.Stdout)
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
