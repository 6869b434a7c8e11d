package selection

import (
	"github.com/kdouveno/selescript/internal/document"
)

// LineGrouper assigns line group indices to a sequence of start lines.
// The first line gets index 0; the index increases by one each time the
// line differs from the previous one.
type LineGrouper struct {
	started  bool
	lastLine int
	index    int
}

// Next returns the group index for a record starting on line.
func (g *LineGrouper) Next(line int) int {
	if !g.started {
		g.started = true
		g.lastLine = line
		return g.index
	}
	if line != g.lastLine {
		g.index++
	}
	g.lastLine = line
	return g.index
}

// Build normalizes host selections into records.
//
// With no selections, or a single empty one, a single record spanning the
// whole document is returned. Otherwise there is one record per selection,
// in host order.
func Build(doc document.Document, sels []Selection, batch *document.Batch) []*Record {
	if len(sels) == 0 {
		return []*Record{wholeDocument(doc, Selection{}, false, batch)}
	}
	if len(sels) == 1 && sels[0].IsEmpty() {
		return []*Record{wholeDocument(doc, sels[0], true, batch)}
	}

	records := make([]*Record, 0, len(sels))
	var lines LineGrouper
	for i, sel := range sels {
		rng := sel.Range()
		offsets := document.Range{
			Start: doc.PointToOffset(rng.Start),
			End:   doc.PointToOffset(rng.End),
		}
		records = append(records, &Record{
			Text:       doc.TextRange(offsets),
			Range:      rng,
			Index:      i,
			LineIndex:  lines.Next(rng.Start.Line),
			IsEmpty:    sel.IsEmpty(),
			IsReversed: sel.IsReversed(),
			source:     sel,
			hasSource:  true,
			offsets:    offsets,
			batch:      batch,
		})
	}
	return records
}

// wholeDocument builds the record used when nothing is selected. Its source
// stays the host caret, if any, so the selection can be restored unchanged.
func wholeDocument(doc document.Document, caret Selection, hasCaret bool, batch *document.Batch) *Record {
	offsets := document.Range{Start: 0, End: doc.Len()}
	rng := document.PointRange{
		Start: doc.OffsetToPoint(offsets.Start),
		End:   doc.OffsetToPoint(offsets.End),
	}
	return &Record{
		Text:      doc.Text(),
		Range:     rng,
		IsEmpty:   offsets.IsEmpty(),
		source:    caret,
		hasSource: hasCaret,
		offsets:   offsets,
		batch:     batch,
	}
}
