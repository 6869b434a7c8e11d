package document

import "fmt"

// ByteOffset represents a byte position in a document.
type ByteOffset = int

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column is measured in bytes from the start of the line.
type Point struct {
	Line   int
	Column int
}

// NewPoint creates a Point.
func NewPoint(line, column int) Point {
	return Point{Line: line, Column: column}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// PointRange is a span expressed in line/column coordinates.
// Start is always at or before End.
type PointRange struct {
	Start Point
	End   Point
}

// String returns a human-readable representation of the range.
func (r PointRange) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}

// IsEmpty returns true if the range has zero width.
func (r PointRange) IsEmpty() bool {
	return r.Start == r.End
}
