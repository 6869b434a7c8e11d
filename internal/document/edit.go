package document

import (
	"fmt"
	"sort"
)

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   Range
	NewText string
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// Delta returns the change in document length caused by this edit.
func (e Edit) Delta() ByteOffset {
	return ByteOffset(len(e.NewText)) - e.Range.Len()
}

// SortEditsReverse sorts edits in descending order by start position.
// For equal starts the longer range comes first, so an insertion lands
// before a replacement that begins at the same offset.
// This mutates the input slice.
func SortEditsReverse(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Range.Start != edits[j].Range.Start {
			return edits[i].Range.Start > edits[j].Range.Start
		}
		return edits[i].Range.End > edits[j].Range.End
	})
}

// CheckEdits returns ErrEditsOverlap unless edits are sorted by descending
// start offset and pairwise disjoint.
func CheckEdits(edits []Edit) error {
	for i := 1; i < len(edits); i++ {
		prev, cur := edits[i-1].Range, edits[i].Range
		if cur.Start > prev.Start || cur.Overlaps(prev) || cur.End > prev.Start {
			return fmt.Errorf("%w: %s and %s", ErrEditsOverlap, cur, prev)
		}
	}
	return nil
}
