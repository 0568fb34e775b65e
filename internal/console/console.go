// Package console runs the interactive exercise programs over an input
// stream and an output writer. Each Run method is one program.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"practice/internal/config"
)

var (
	promptf = color.New(color.FgBlue).FprintfFunc()
	warnf   = color.New(color.FgYellow).FprintfFunc()
)

// Console couples a Prompter with the writer prompts and results go to.
type Console struct {
	in  *Prompter
	out io.Writer
	cfg config.ConsoleConfig
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, cfg config.ConsoleConfig) *Console {
	return &Console{in: NewPrompter(in), out: out, cfg: cfg}
}

func (c *Console) prompt(format string, a ...interface{}) {
	promptf(c.out, format, a...)
}

func (c *Console) warn(format string, a ...interface{}) {
	warnf(c.out, format, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) askInt(format string, a ...interface{}) (int, error) {
	c.prompt(format, a...)
	return c.in.ReadInt()
}

func (c *Console) askLine(format string, a ...interface{}) (string, error) {
	c.prompt(format, a...)
	return c.in.ReadLine()
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
