// Package progress renders fingerprinting progress on the terminal.
package progress

import (
	"io"
	"os"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// Bar is a progress bar usable as a pool.Observer
type Bar struct {
	mu  sync.Mutex
	bar *pterm.ProgressbarPrinter
}

// cursorWriter lets a plain io.Writer receive the cursor show/hide codes.
type cursorWriter struct {
	io.Writer
}

func (cursorWriter) Fd() uintptr { return ^uintptr(0) }

func cursorTarget(w io.Writer) cursor.Writer {
	if cw, ok := w.(cursor.Writer); ok {
		return cw
	}
	return cursorWriter{w}
}

// Start shows a progress bar for total items on w. The cursor escape codes
// pterm emits go to w as well, never to stdout.
func Start(w io.Writer, title string, total int) (*Bar, error) {
	cursor.SetTarget(cursorTarget(w))

	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithWriter(w).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		cursor.SetTarget(os.Stdout)
		return nil, err
	}
	return &Bar{bar: bar}, nil
}

// FileDone advances the bar by one; failures count as processed too
func (b *Bar) FileDone(string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bar.Increment()
}

// Stop removes the bar from the terminal
func (b *Bar) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.bar.Stop()
	cursor.SetTarget(os.Stdout)
}
