package document

import (
	"fmt"
	"sync"
)

// Batch is the pending edit set of one script run.
//
// Replace only records the edit; the document is untouched until the owner
// hands Edits to the host in one call. Replacing the exact same range twice
// keeps the latest text.
type Batch struct {
	mu    sync.Mutex
	doc   Document
	edits []Edit
	index map[Range]int
}

// NewBatch creates an empty batch for edits to doc.
func NewBatch(doc Document) *Batch {
	return &Batch{
		doc:   doc,
		index: make(map[Range]int),
	}
}

// Replace stages a replacement of the byte range r.
func (b *Batch) Replace(r Range, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i, ok := b.index[r]; ok {
		b.edits[i].NewText = text
		return
	}
	b.index[r] = len(b.edits)
	b.edits = append(b.edits, Edit{Range: r, NewText: text})
}

// Edits returns the staged edits sorted for ApplyEdits.
// It fails with ErrRangeInvalid if a range lies outside doc, and with
// ErrEditsOverlap if two staged ranges conflict.
func (b *Batch) Edits() ([]Edit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	edits := make([]Edit, len(b.edits))
	copy(edits, b.edits)
	size := b.doc.Len()
	for _, e := range edits {
		if !e.Range.IsValid() || e.Range.End > size {
			return nil, fmt.Errorf("%w: %s in a document of %d bytes", ErrRangeInvalid, e.Range, size)
		}
	}
	SortEditsReverse(edits)
	if err := CheckEdits(edits); err != nil {
		return nil, err
	}
	return edits, nil
}
