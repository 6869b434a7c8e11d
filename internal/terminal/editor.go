package terminal

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/selection"
)

// Editor implements host.Editor over a Source. Edits change the in-memory
// buffer; Save writes it back.
type Editor struct {
	mu       sync.Mutex
	source   Source
	original string
	buf      *document.Buffer
	sels     []selection.Selection
}

// Open reads source and creates an Editor with sels.
func Open(source Source, sels []selection.Selection) (*Editor, error) {
	text, err := source.Read()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source.Name(), err)
	}
	return &Editor{
		source:   source,
		original: text,
		buf:      document.NewBuffer(text),
		sels:     sels,
	}, nil
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
	return e.buf.ApplyEdits(edits)
}

// Original returns the text as it was when the editor was opened.
func (e *Editor) Original() string {
	return e.original
}

// Text returns the current text.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Modified reports whether the text differs from the original.
func (e *Editor) Modified() bool {
	return e.buf.Text() != e.original
}

// Save writes the text back to the source if it was modified.
func (e *Editor) Save() error {
	if !e.Modified() {
		return nil
	}
	if err := e.source.Write(e.buf.Text()); err != nil {
		return fmt.Errorf("writing %s: %w", e.source.Name(), err)
	}
	return nil
}

// ParseSelection parses "line:col-line:col" with 1-based lines and columns.
// The first position is the anchor and the second the active end, so a
// second position before the first gives a reversed selection. A single
// "line:col" is a caret.
func ParseSelection(s string) (selection.Selection, error) {
	anchorStr, activeStr, found := strings.Cut(s, "-")
	anchor, err := parsePoint(anchorStr)
	if err != nil {
		return selection.Selection{}, fmt.Errorf("selection %q: %w", s, err)
	}
	if !found {
		return selection.NewCaret(anchor), nil
	}
	active, err := parsePoint(activeStr)
	if err != nil {
		return selection.Selection{}, fmt.Errorf("selection %q: %w", s, err)
	}
	return selection.NewSelection(anchor, active), nil
}

func parsePoint(s string) (document.Point, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return document.Point{}, fmt.Errorf("want line:col, got %q", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return document.Point{}, fmt.Errorf("invalid line %q", lineStr)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return document.Point{}, fmt.Errorf("invalid column %q", colStr)
	}
	return document.NewPoint(line-1, col-1), nil
}

// FormatSelection is the inverse of ParseSelection.
func FormatSelection(s selection.Selection) string {
	if s.IsEmpty() {
		return fmt.Sprintf("%d:%d", s.Anchor.Line+1, s.Anchor.Column+1)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Anchor.Line+1, s.Anchor.Column+1, s.Active.Line+1, s.Active.Column+1)
}
