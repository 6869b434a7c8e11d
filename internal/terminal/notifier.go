package terminal

import (
	"io"

	"github.com/fatih/color"
)

// Notifier prints notifications to a terminal.
type Notifier struct {
	out  io.Writer
	info *color.Color
	err  *color.Color
}

// NewNotifier creates a Notifier writing to out.
func NewNotifier(out io.Writer, colored bool) *Notifier {
	n := &Notifier{
		out:  out,
		info: color.New(color.FgGreen),
		err:  color.New(color.FgRed),
	}
	if !colored {
		n.info.DisableColor()
		n.err.DisableColor()
	}
	return n
}

// Info implements host.Notifier.
func (n *Notifier) Info(msg string) {
	n.info.Fprintf(n.out, "✓ %s\n", msg)
}

// Error implements host.Notifier.
func (n *Notifier) Error(msg string) {
	n.err.Fprintf(n.out, "✗ Error: %s\n", msg)
}
