// Package shared holds the terminal plumbing used by every practice
// subcommand: colored status lines and a cancelable stdin.
package shared

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()

// ErrorMsg prints an error message to stderr in red.
func ErrorMsg(format string, a ...interface{}) {
	ErrorMsgTo(os.Stderr, format, a...)
}

// ErrorMsgTo is ErrorMsg with an explicit destination.
func ErrorMsgTo(w io.Writer, format string, a ...interface{}) {
	red(w, "[!] Error: "+format, a...)
}
