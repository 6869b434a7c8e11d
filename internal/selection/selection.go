package selection

import (
	"fmt"

	"github.com/kdouveno/selescript/internal/document"
)

// Point is an alias for document.Point for convenience.
type Point = document.Point

// Selection represents a host selection.
// Anchor is where the selection started; Active is where the caret is.
// When Anchor == Active, this represents a caret with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Point
	Active Point
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Point) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// NewCaret creates a selection representing just a caret (no extent).
func NewCaret(p Point) Selection {
	return Selection{Anchor: p, Active: p}
}

// IsEmpty returns true if the selection has no extent (just a caret).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// IsReversed returns true if the selection extends backward (active before anchor).
func (s Selection) IsReversed() bool {
	return s.Active.Before(s.Anchor)
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Point {
	if s.IsReversed() {
		return s.Active
	}
	return s.Anchor
}

// End returns the upper bound of the selection.
func (s Selection) End() Point {
	if s.IsReversed() {
		return s.Anchor
	}
	return s.Active
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() document.PointRange {
	return document.PointRange{Start: s.Start(), End: s.End()}
}

// WithRange returns a selection covering r that keeps the direction of s.
func (s Selection) WithRange(r document.PointRange) Selection {
	if s.IsReversed() {
		return Selection{Anchor: r.End, Active: r.Start}
	}
	return Selection{Anchor: r.Start, Active: r.End}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("Selection{anchor: %s, active: %s}", s.Anchor, s.Active)
}
