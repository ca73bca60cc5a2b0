package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func errLabel() string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return color.RedString("error:")
	}
	return "error:"
}

// fatal prints a one-line diagnostic to stderr and exits with the status
// for err.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errLabel(), err)
	os.Exit(exitCode(err))
}
