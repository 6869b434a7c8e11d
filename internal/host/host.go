// Package host defines what the script engine needs from the editor that
// embeds it.
package host

import (
	"context"
	"errors"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/selection"
)

// ErrCancelled is returned by prompts the user dismissed.
var ErrCancelled = errors.New("cancelled")

// Editor is the active document and its selections.
type Editor interface {
	// Document returns the current document contents.
	Document() document.Document

	// Selections returns the current selections in host order.
	Selections() []selection.Selection

	// SetSelections replaces the selection set.
	SetSelections(sels []selection.Selection)

	// Apply commits edits atomically. Edits are sorted in reverse document
	// order and do not overlap. Either all edits apply or none do.
	Apply(edits []document.Edit) error
}

// InputOptions configures a text prompt.
type InputOptions struct {
	Prompt      string
	Placeholder string
	Default     string
}

// Item is an entry of a pick list.
type Item struct {
	Label       string
	Description string
	Value       string
}

// Prompter asks the user for values.
type Prompter interface {
	// Input prompts for a line of text. It returns ErrCancelled when the
	// user dismisses the prompt.
	Input(ctx context.Context, opts InputOptions) (string, error)

	// Pick lets the user choose one item. It returns ErrCancelled when the
	// user dismisses the list.
	Pick(ctx context.Context, title string, items []Item) (Item, error)
}

// Notifier shows messages to the user.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Opener opens a file for editing.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// IsCancelled reports whether err is a user or context cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
