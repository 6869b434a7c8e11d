package match

import (
	"testing"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/selection"
)

func buildOne(t *testing.T, doc *document.Buffer, sel selection.Selection) *selection.Record {
	t.Helper()
	records := selection.Build(doc, []selection.Selection{sel}, document.NewBatch(doc))
	if len(records) != 1 {
		t.Fatalf("Build() returned %d records", len(records))
	}
	return records[0]
}

func TestDecorateOffsets(t *testing.T) {
	doc := document.NewBuffer("xx a1 b22 c3")
	rec := buildOne(t, doc, selection.NewSelection(
		document.Point{Line: 0, Column: 3},
		document.Point{Line: 0, Column: 12},
	))

	p, err := ParsePattern(`/\d+/g`)
	if err != nil {
		t.Fatalf("ParsePattern() error = %v", err)
	}
	Decorate(p, rec, doc)

	want := []struct {
		text  string
		start int
		end   int
	}{
		{"1", 4, 5},
		{"22", 7, 9},
		{"3", 11, 12},
	}
	if len(rec.Matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(rec.Matches), len(want))
	}
	for i, m := range rec.Matches {
		if m.Text != want[i].text {
			t.Errorf("match %d text = %q, want %q", i, m.Text, want[i].text)
		}
		if m.Offsets() != document.NewRange(want[i].start, want[i].end) {
			t.Errorf("match %d offsets = %v, want [%d:%d)", i, m.Offsets(), want[i].start, want[i].end)
		}
		if m.Index != i {
			t.Errorf("match %d index = %d", i, m.Index)
		}
		if m.Range.Start.Before(rec.Range.Start) || m.Range.End.Compare(rec.Range.End) > 0 {
			t.Errorf("match %d range %v outside record %v", i, m.Range, rec.Range)
		}
		if m.Selected {
			t.Errorf("match %d starts selected", i)
		}
	}
}

func TestDecorateThreeSingleCharMatches(t *testing.T) {
	doc := document.NewBuffer("aaa")
	rec := buildOne(t, doc, selection.NewSelection(document.Point{}, document.Point{Column: 3}))

	p, _ := ParsePattern("/a/g")
	Decorate(p, rec, doc)

	if len(rec.Matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(rec.Matches))
	}
	for i, m := range rec.Matches {
		if m.Offsets().Start != i || m.Offsets().Len() != 1 {
			t.Errorf("match %d offsets = %v", i, m.Offsets())
		}
	}
}

func TestDecorateCapturesAndLineIndex(t *testing.T) {
	doc := document.NewBuffer("k1=v1 k2=v2\nk3=v3\n\nk4=")
	rec := buildOne(t, doc, selection.NewSelection(document.Point{}, document.Point{Line: 3, Column: 3}))

	p, _ := ParsePattern(`/(\w+)=(\w+)?/g`)
	Decorate(p, rec, doc)

	if len(rec.Matches) != 4 {
		t.Fatalf("got %d matches, want 4", len(rec.Matches))
	}

	wantLine := []int{0, 0, 1, 2}
	for i, m := range rec.Matches {
		if m.LineIndex != wantLine[i] {
			t.Errorf("match %d LineIndex = %d, want %d", i, m.LineIndex, wantLine[i])
		}
	}

	if got := rec.Matches[2].Captures; len(got) != 2 || got[0] != "k3" || got[1] != "v3" {
		t.Errorf("match 2 captures = %q", got)
	}
	if got := rec.Matches[3].Captures; got[0] != "k4" || got[1] != "" {
		t.Errorf("match 3 captures = %q, want unmatched group as empty", got)
	}
	if rec.Matches[2].Range.Start != (document.Point{Line: 1, Column: 0}) {
		t.Errorf("match 2 start = %v", rec.Matches[2].Range.Start)
	}
}

func TestDecorateNoMatchesIsEmptyNotNil(t *testing.T) {
	doc := document.NewBuffer("abc")
	records := selection.Build(doc, nil, document.NewBatch(doc))

	p, _ := ParsePattern("/z/g")
	DecorateAll(p, records, doc)

	if records[0].Matches == nil {
		t.Fatal("Matches is nil, want empty slice")
	}
	if len(records[0].Matches) != 0 {
		t.Errorf("got %d matches, want 0", len(records[0].Matches))
	}
}

func TestMatchReplaceStagesEdit(t *testing.T) {
	doc := document.NewBuffer("a1 b22 c3")
	batch := document.NewBatch(doc)
	records := selection.Build(doc, nil, batch)

	p, _ := ParsePattern(`/\d+/g`)
	DecorateAll(p, records, doc)
	for _, m := range records[0].Matches {
		m.Replace("#")
	}

	edits, err := batch.Edits()
	if err != nil {
		t.Fatalf("Edits() error = %v", err)
	}
	if err := doc.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if got := doc.Text(); got != "a# b# c#" {
		t.Errorf("Text() = %q, want %q", got, "a# b# c#")
	}
}
