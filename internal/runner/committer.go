package runner

import (
	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/selection"
)

// target is a selection to restore, with its range in pre-edit offsets.
type target struct {
	sel     selection.Selection
	offsets document.Range
}

// Committer derives the selection set that follows a pattern run.
//
// For each record, the matches the script selected replace the record's
// own selection; a record with no selected match keeps its host selection,
// or contributes nothing when the host had none. Record order is preserved.
type Committer struct {
	targets []target
}

// NewCommitter captures the selection targets of records. It must be called
// before the edits are applied, while doc still holds the original text.
func NewCommitter(records []*selection.Record, doc document.Document) *Committer {
	c := &Committer{}
	for _, rec := range records {
		source, ok := rec.Source()
		selected := rec.SelectedMatches()
		if len(selected) == 0 {
			if !ok {
				continue
			}
			rng := source.Range()
			c.targets = append(c.targets, target{
				sel: source,
				offsets: document.Range{
					Start: doc.PointToOffset(rng.Start),
					End:   doc.PointToOffset(rng.End),
				},
			})
			continue
		}
		for _, m := range selected {
			c.targets = append(c.targets, target{
				sel:     source.WithRange(m.Range),
				offsets: m.Offsets(),
			})
		}
	}
	return c
}

// Selections maps the captured targets through the committed edits and
// returns them in doc coordinates. doc must hold the edited text. Each
// selection keeps the direction of the host selection it came from.
func (c *Committer) Selections(edits []document.Edit, doc document.Document) []selection.Selection {
	sels := make([]selection.Selection, 0, len(c.targets))
	for _, t := range c.targets {
		r := document.TransformRange(t.offsets, edits)
		sels = append(sels, t.sel.WithRange(document.PointRange{
			Start: doc.OffsetToPoint(r.Start),
			End:   doc.OffsetToPoint(r.End),
		}))
	}
	return sels
}
