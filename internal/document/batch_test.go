package document

import (
	"errors"
	"testing"
)

func TestBatchStagesWithoutApplying(t *testing.T) {
	buf := NewBuffer("one two three")
	batch := NewBatch(buf)

	batch.Replace(NewRange(0, 3), "1")
	batch.Replace(NewRange(8, 13), "3")

	if got := buf.Text(); got != "one two three" {
		t.Fatalf("document changed before commit: %q", got)
	}

	edits, err := batch.Edits()
	if err != nil {
		t.Fatalf("Edits() error = %v", err)
	}
	if edits[0].Range.Start != 8 {
		t.Errorf("edits not in reverse order: %v", edits)
	}
	if err := buf.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if got := buf.Text(); got != "1 two 3" {
		t.Errorf("Text() = %q, want %q", got, "1 two 3")
	}
}

func TestBatchSameRangeKeepsLatest(t *testing.T) {
	buf := NewBuffer("abc")
	batch := NewBatch(buf)

	batch.Replace(NewRange(0, 3), "first")
	batch.Replace(NewRange(0, 3), "second")

	edits, err := batch.Edits()
	if err != nil {
		t.Fatalf("Edits() error = %v", err)
	}
	if len(edits) != 1 || edits[0].NewText != "second" {
		t.Errorf("Edits() = %v, want single edit with latest text", edits)
	}
}

func TestBatchOverlapRejected(t *testing.T) {
	batch := NewBatch(NewBuffer("abcdef"))
	batch.Replace(NewRange(0, 4), "x")
	batch.Replace(NewRange(2, 6), "y")

	if _, err := batch.Edits(); !errors.Is(err, ErrEditsOverlap) {
		t.Errorf("Edits() error = %v, want ErrEditsOverlap", err)
	}
}

func TestBatchOutOfRangeRejected(t *testing.T) {
	batch := NewBatch(NewBuffer("abc"))
	batch.Replace(NewRange(1, 9), "x")

	if _, err := batch.Edits(); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Edits() error = %v, want ErrRangeInvalid", err)
	}
}

func TestTransformRange(t *testing.T) {
	// "a1 b22 c3" with "1" -> "one" and "3" -> "three".
	edits := []Edit{
		NewEdit(NewRange(8, 9), "three"),
		NewEdit(NewRange(1, 2), "one"),
	}

	tests := []struct {
		name string
		in   Range
		want Range
	}{
		{"before all", NewRange(0, 1), NewRange(0, 1)},
		{"between", NewRange(4, 6), NewRange(6, 8)},
		{"replaced span", NewRange(1, 2), NewRange(1, 4)},
		{"last replaced span", NewRange(8, 9), NewRange(10, 15)},
		{"whole text", NewRange(0, 9), NewRange(0, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformRange(tt.in, edits); got != tt.want {
				t.Errorf("TransformRange(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
