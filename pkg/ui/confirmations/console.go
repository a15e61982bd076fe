// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arthur-debert/lnopt/pkg/logging"
	"github.com/arthur-debert/lnopt/pkg/types"
)

// Always approves every replacement; used for -y
var Always types.Confirmer = types.ConfirmFunc(func(string, string) bool { return true })

// Never declines every replacement
var Never types.Confirmer = types.ConfirmFunc(func(string, string) bool { return false })

// ConsoleDialog asks for confirmation on a console, one file at a time
type ConsoleDialog struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading answers from in and writing
// prompts to out (normally stdin and stderr)
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints "Link path => canonical ? [y/N]" and reads one line.
// Only "y" or "yes" approve; anything else, EOF included, declines.
func (d *ConsoleDialog) Confirm(path, canonical string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.out, "Link %s => %s ? [y/N] ", path, canonical)

	line, err := d.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err != io.EOF {
			logger := logging.GetLogger("confirmations")
			logger.Warn().Err(err).Str("path", path).Msg("Failed to read confirmation")
		}
		fmt.Fprintln(d.out)
		return false
	}

	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes"
}
