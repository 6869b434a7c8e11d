package document

import (
	"sort"
	"strings"
	"sync"
)

// Document is the read side of a host's text buffer.
//
// Offsets and columns are byte based. Implementations clamp out-of-range
// coordinates instead of failing, matching how editors resolve positions.
type Document interface {
	// Text returns the entire document text.
	Text() string

	// TextRange returns the text in the given byte range.
	TextRange(r Range) string

	// Len returns the document length in bytes.
	Len() ByteOffset

	// OffsetToPoint converts a byte offset to a line/column position.
	OffsetToPoint(offset ByteOffset) Point

	// PointToOffset converts a line/column position to a byte offset.
	PointToOffset(p Point) ByteOffset
}

// Buffer is an in-memory Document.
// All methods are safe for concurrent use.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []ByteOffset
}

// NewBuffer creates a buffer holding text.
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.setText(text)
	return b
}

func (b *Buffer) setText(text string) {
	b.text = text
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Text returns the entire buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextRange returns the text in the given range, clamped to the buffer.
func (b *Buffer) TextRange(r Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end := b.clamp(r.Start), b.clamp(r.End)
	if start > end {
		return ""
	}
	return b.text[start:end]
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// OffsetToPoint converts a byte offset to a line/column position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	offset = b.clamp(offset)
	// Index of the last line starting at or before offset.
	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
	return Point{Line: line, Column: offset - b.lineStarts[line]}
}

// PointToOffset converts a line/column position to a byte offset.
// Lines past the end resolve to the end of the buffer; columns past the end
// of a line resolve to the end of that line.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(b.lineStarts) {
		return len(b.text)
	}
	start := b.lineStarts[p.Line]
	end := len(b.text)
	if p.Line+1 < len(b.lineStarts) {
		end = b.lineStarts[p.Line+1] - 1
	}
	col := p.Column
	if col < 0 {
		col = 0
	}
	if start+col > end {
		return end
	}
	return start + col
}

func (b *Buffer) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > len(b.text) {
		return len(b.text)
	}
	return offset
}

// ApplyEdits applies multiple edits atomically.
// Edits must be in reverse order (highest offset first) and must not overlap.
// Nothing is applied if any edit is invalid.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := CheckEdits(edits); err != nil {
		return err
	}
	for _, edit := range edits {
		if !edit.Range.IsValid() || edit.Range.End > len(b.text) {
			return ErrRangeInvalid
		}
	}

	var sb strings.Builder
	sb.Grow(len(b.text))
	last := 0
	// Walk the reverse-ordered edits from the front of the text.
	for i := len(edits) - 1; i >= 0; i-- {
		edit := edits[i]
		sb.WriteString(b.text[last:edit.Range.Start])
		sb.WriteString(edit.NewText)
		last = edit.Range.End
	}
	sb.WriteString(b.text[last:])

	b.setText(sb.String())
	return nil
}
