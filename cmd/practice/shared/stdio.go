package shared

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// NewStdin wraps os.Stdin so that a pending read returns
// cancelreader.ErrCanceled once ctx is done. Platforms without cancelable
// reads get plain os.Stdin. The returned func stops the watcher; it is safe
// to call more than once.
func NewStdin(ctx context.Context) (io.Reader, func()) {
	cr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return os.Stdin, func() {}
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			cr.Cancel()
		case <-done:
		}
	}()

	var once sync.Once
	return cr, func() {
		once.Do(func() {
			close(done)
			_ = cr.Close()
		})
	}
}

// ConfigureColor disables colored output when asked to, or when stdout is
// not a terminal.
func ConfigureColor(noColor bool) {
	color.NoColor = noColor || !term.IsTerminal(int(os.Stdout.Fd()))
}
