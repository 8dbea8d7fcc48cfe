// Package report prints user-facing errors to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
