package selection

import (
	"github.com/kdouveno/selescript/internal/document"
)

// Record is one normalized selection as seen by a script.
type Record struct {
	Text       string
	Range      document.PointRange
	Index      int
	LineIndex  int
	IsEmpty    bool
	IsReversed bool

	// Matches is nil when the run has no pattern, and non-nil (possibly
	// empty) once a pattern was applied.
	Matches []*Match

	source    Selection
	hasSource bool
	offsets   document.Range
	batch     *document.Batch
}

// Replace stages a replacement of the record's original range.
func (r *Record) Replace(text string) {
	r.batch.Replace(r.offsets, text)
}

// Source returns the host selection the record was built from. The second
// result is false when the host reported no selection at all.
func (r *Record) Source() (Selection, bool) {
	return r.source, r.hasSource
}

// Offsets returns the record's byte range in the document.
func (r *Record) Offsets() document.Range {
	return r.offsets
}

// NewMatch creates a match record bound to the same edit batch as r.
// The caller is responsible for appending it to r.Matches.
func (r *Record) NewMatch(offsets document.Range, rng document.PointRange, text string, captures []string, index, lineIndex int) *Match {
	return &Match{
		Text:      text,
		Captures:  captures,
		Range:     rng,
		Index:     index,
		LineIndex: lineIndex,
		offsets:   offsets,
		batch:     r.batch,
	}
}

// SelectedMatches returns the matches flagged with Select, in order.
func (r *Record) SelectedMatches() []*Match {
	var selected []*Match
	for _, m := range r.Matches {
		if m.Selected {
			selected = append(selected, m)
		}
	}
	return selected
}

// Match is a regular expression match inside a Record.
type Match struct {
	Text      string
	Captures  []string
	Range     document.PointRange
	Index     int
	LineIndex int
	Selected  bool

	offsets document.Range
	batch   *document.Batch
}

// Replace stages a replacement of the matched span.
func (m *Match) Replace(text string) {
	m.batch.Replace(m.offsets, text)
}

// Select marks the match as part of the selection set after the run.
func (m *Match) Select() {
	m.Selected = true
}

// Offsets returns the match's byte range in the document.
func (m *Match) Offsets() document.Range {
	return m.offsets
}
