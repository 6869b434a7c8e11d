package selection

import (
	"testing"

	"github.com/kdouveno/selescript/internal/document"
)

func sel(al, ac, hl, hc int) Selection {
	return NewSelection(Point{Line: al, Column: ac}, Point{Line: hl, Column: hc})
}

func TestBuildWholeDocument(t *testing.T) {
	doc := document.NewBuffer("first\nsecond")

	tests := []struct {
		name string
		sels []Selection
	}{
		{"no selections", nil},
		{"single caret", []Selection{NewCaret(Point{Line: 1, Column: 2})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Build(doc, tt.sels, document.NewBatch(doc))
			if len(records) != 1 {
				t.Fatalf("Build() returned %d records, want 1", len(records))
			}
			rec := records[0]
			if rec.Text != doc.Text() {
				t.Errorf("Text = %q, want whole document", rec.Text)
			}
			if rec.Offsets() != document.NewRange(0, doc.Len()) {
				t.Errorf("Offsets() = %v, want [0:%d)", rec.Offsets(), doc.Len())
			}
			wantEnd := Point{Line: 1, Column: 6}
			if rec.Range.End != wantEnd {
				t.Errorf("Range.End = %v, want %v", rec.Range.End, wantEnd)
			}
			if rec.Index != 0 || rec.LineIndex != 0 {
				t.Errorf("Index/LineIndex = %d/%d, want 0/0", rec.Index, rec.LineIndex)
			}
			if rec.Matches != nil {
				t.Errorf("Matches = %v, want nil", rec.Matches)
			}
		})
	}
}

func TestBuildCaretSourcePreserved(t *testing.T) {
	doc := document.NewBuffer("abc")
	caret := NewCaret(Point{Line: 0, Column: 2})

	records := Build(doc, []Selection{caret}, document.NewBatch(doc))
	if got, ok := records[0].Source(); !ok || got != caret {
		t.Errorf("Source() = %v, %v; want %v, true", got, ok, caret)
	}
}

func TestBuildNoSelectionHasNoSource(t *testing.T) {
	doc := document.NewBuffer("abc")

	records := Build(doc, nil, document.NewBatch(doc))
	if _, ok := records[0].Source(); ok {
		t.Error("Source() ok = true, want false without host selections")
	}
}

func TestBuildIndexAndLineIndex(t *testing.T) {
	doc := document.NewBuffer("aaaa\nbbbb\ncccc\ndddd")
	sels := []Selection{
		sel(0, 0, 0, 1),
		sel(0, 2, 0, 3),
		sel(1, 0, 1, 4),
		sel(3, 0, 3, 2),
		sel(3, 3, 3, 4),
		sel(2, 1, 2, 2),
	}

	records := Build(doc, sels, document.NewBatch(doc))
	if len(records) != len(sels) {
		t.Fatalf("Build() returned %d records, want %d", len(records), len(sels))
	}

	wantLineIndex := []int{0, 0, 1, 2, 2, 3}
	for i, rec := range records {
		if rec.Index != i {
			t.Errorf("records[%d].Index = %d", i, rec.Index)
		}
		if rec.LineIndex != wantLineIndex[i] {
			t.Errorf("records[%d].LineIndex = %d, want %d", i, rec.LineIndex, wantLineIndex[i])
		}
		if i > 0 {
			step := rec.LineIndex - records[i-1].LineIndex
			if step < 0 || step > 1 {
				t.Errorf("LineIndex step %d at %d", step, i)
			}
		}
	}

	if records[2].Text != "bbbb" {
		t.Errorf("records[2].Text = %q, want %q", records[2].Text, "bbbb")
	}
}

func TestBuildReversedAndMultiLine(t *testing.T) {
	doc := document.NewBuffer("hello\nworld")
	sels := []Selection{
		sel(1, 3, 0, 2),
		NewCaret(Point{Line: 1, Column: 0}),
	}

	records := Build(doc, sels, document.NewBatch(doc))

	if !records[0].IsReversed {
		t.Error("records[0].IsReversed = false, want true")
	}
	if records[0].Text != "llo\nwor" {
		t.Errorf("records[0].Text = %q, want %q", records[0].Text, "llo\nwor")
	}
	if records[0].Range.Start != (Point{Line: 0, Column: 2}) {
		t.Errorf("records[0].Range.Start = %v", records[0].Range.Start)
	}
	if !records[1].IsEmpty || records[1].Text != "" {
		t.Errorf("records[1] = %+v, want empty caret record", records[1])
	}
}

func TestRecordReplaceTargetsOriginalRange(t *testing.T) {
	doc := document.NewBuffer("one two three")
	batch := document.NewBatch(doc)
	records := Build(doc, []Selection{sel(0, 8, 0, 13), sel(0, 0, 0, 3)}, batch)

	records[0].Replace("THREE")
	records[1].Replace("ONE")

	edits, err := batch.Edits()
	if err != nil {
		t.Fatalf("Edits() error = %v", err)
	}
	if err := doc.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if got := doc.Text(); got != "ONE two THREE" {
		t.Errorf("Text() = %q, want %q", got, "ONE two THREE")
	}
}

func TestSelectionDirection(t *testing.T) {
	s := sel(2, 5, 1, 0)
	if !s.IsReversed() {
		t.Fatal("IsReversed() = false, want true")
	}
	if s.Start() != (Point{Line: 1, Column: 0}) || s.End() != (Point{Line: 2, Column: 5}) {
		t.Errorf("Start/End = %v/%v", s.Start(), s.End())
	}

	moved := s.WithRange(document.PointRange{Start: Point{Column: 1}, End: Point{Column: 3}})
	if !moved.IsReversed() || moved.Active != (Point{Column: 1}) {
		t.Errorf("WithRange() = %v, want reversed selection", moved)
	}
}
