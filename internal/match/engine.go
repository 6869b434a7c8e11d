package match

import (
	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/selection"
)

// Decorate applies p to the text of rec and sets rec.Matches.
// Matches are ordered left to right; rec.Matches is non-nil even when
// nothing matched. Offsets are translated to document coordinates by adding
// the record's start offset.
func Decorate(p *Pattern, rec *selection.Record, doc document.Document) {
	locs := p.FindAll(rec.Text)
	matches := make([]*selection.Match, 0, len(locs))
	base := rec.Offsets().Start

	var lines selection.LineGrouper
	for i, loc := range locs {
		offsets := document.Range{Start: base + loc[0], End: base + loc[1]}
		rng := document.PointRange{
			Start: doc.OffsetToPoint(offsets.Start),
			End:   doc.OffsetToPoint(offsets.End),
		}
		matches = append(matches, rec.NewMatch(
			offsets,
			rng,
			rec.Text[loc[0]:loc[1]],
			captures(rec.Text, loc),
			i,
			lines.Next(rng.Start.Line),
		))
	}
	rec.Matches = matches
}

// DecorateAll applies p to every record.
func DecorateAll(p *Pattern, records []*selection.Record, doc document.Document) {
	for _, rec := range records {
		Decorate(p, rec, doc)
	}
}

// captures extracts the capture groups of one match.
// Groups that did not participate are reported as empty strings.
func captures(text string, loc []int) []string {
	groups := len(loc)/2 - 1
	caps := make([]string, groups)
	for g := 1; g <= groups; g++ {
		start, end := loc[2*g], loc[2*g+1]
		if start >= 0 {
			caps[g-1] = text[start:end]
		}
	}
	return caps
}
