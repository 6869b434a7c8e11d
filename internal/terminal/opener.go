package terminal

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when no editor command is configured.
var ErrNoEditor = errors.New("no editor configured")

// Opener opens files with an external editor command.
type Opener struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer

	// Suspend is closed before the editor starts, to hand it the terminal.
	Suspend io.Closer
}

// NewOpener creates an Opener running command with the file path appended.
// The command is split on whitespace, so "code --wait" works.
func NewOpener(command string, stdin io.Reader, stdout, stderr io.Writer) *Opener {
	return &Opener{command: command, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Open implements host.Opener. It waits for the editor to exit.
func (o *Opener) Open(ctx context.Context, path string) error {
	fields := strings.Fields(o.command)
	if len(fields) == 0 {
		return ErrNoEditor
	}
	if o.Suspend != nil {
		o.Suspend.Close()
	}
	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr
	return cmd.Run()
}
