// Package hosttest provides in-memory hosts for tests.
package hosttest

import (
	"context"
	"sync"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/host"
	"github.com/kdouveno/selescript/internal/selection"
)

// Editor is an in-memory host.Editor.
type Editor struct {
	mu      sync.Mutex
	buf     *document.Buffer
	sels    []selection.Selection
	applied [][]document.Edit
	fail    error
}

// NewEditor creates an editor holding text and sels.
func NewEditor(text string, sels ...selection.Selection) *Editor {
	return &Editor{buf: document.NewBuffer(text), sels: sels}
}

// Document implements host.Editor.
func (e *Editor) Document() document.Document {
	return e.buf
}

// Selections implements host.Editor.
func (e *Editor) Selections() []selection.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]selection.Selection(nil), e.sels...)
}

// SetSelections implements host.Editor.
func (e *Editor) SetSelections(sels []selection.Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sels = append([]selection.Selection(nil), sels...)
}

// Apply implements host.Editor.
func (e *Editor) Apply(edits []document.Edit) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fail != nil {
		return e.fail
	}
	if err := e.buf.ApplyEdits(edits); err != nil {
		return err
	}
	e.applied = append(e.applied, edits)
	return nil
}

// FailApply makes every later Apply return err.
func (e *Editor) FailApply(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fail = err
}

// Text returns the document text.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Applied returns the edit batches committed so far.
func (e *Editor) Applied() [][]document.Edit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([][]document.Edit(nil), e.applied...)
}

// Prompter answers prompts from a script of responses.
// A response equal to Cancel makes the prompt return host.ErrCancelled.
type Prompter struct {
	mu      sync.Mutex
	inputs  []string
	picks   []string
	Prompts []host.InputOptions
	Titles  []string
}

// Cancel is the response that dismisses a prompt.
const Cancel = "\x00cancel"

// NewPrompter creates a prompter answering Input calls with inputs in order.
func NewPrompter(inputs ...string) *Prompter {
	return &Prompter{inputs: inputs}
}

// WithPicks sets the labels chosen by successive Pick calls.
func (p *Prompter) WithPicks(labels ...string) *Prompter {
	p.picks = labels
	return p
}

// Input implements host.Prompter.
func (p *Prompter) Input(ctx context.Context, opts host.InputOptions) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Prompts = append(p.Prompts, opts)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.inputs) == 0 {
		return "", host.ErrCancelled
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	if v == Cancel {
		return "", host.ErrCancelled
	}
	return v, nil
}

// Pick implements host.Prompter. It picks the item whose label matches the
// next scripted label.
func (p *Prompter) Pick(ctx context.Context, title string, items []host.Item) (host.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Titles = append(p.Titles, title)
	if err := ctx.Err(); err != nil {
		return host.Item{}, err
	}
	if len(p.picks) == 0 {
		return host.Item{}, host.ErrCancelled
	}
	label := p.picks[0]
	p.picks = p.picks[1:]
	for _, it := range items {
		if it.Label == label {
			return it, nil
		}
	}
	return host.Item{}, host.ErrCancelled
}

// Notifier records notifications.
type Notifier struct {
	mu     sync.Mutex
	Infos  []string
	Errors []string
}

// Info implements host.Notifier.
func (n *Notifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Infos = append(n.Infos, msg)
}

// Error implements host.Notifier.
func (n *Notifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}

// Opener records opened paths.
type Opener struct {
	mu     sync.Mutex
	Opened []string
	Err    error
}

// Open implements host.Opener.
func (o *Opener) Open(ctx context.Context, path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return o.Err
	}
	o.Opened = append(o.Opened, path)
	return nil
}

var (
	_ host.Editor   = (*Editor)(nil)
	_ host.Prompter = (*Prompter)(nil)
	_ host.Notifier = (*Notifier)(nil)
	_ host.Opener   = (*Opener)(nil)
)
