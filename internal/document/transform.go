package document

// TransformOffset updates an offset after an edit.
// Returns the new offset position.
//
// Transformation rules:
//   - If edit is entirely before offset: adjust offset by the edit's delta
//   - If edit starts at or after offset: offset unchanged
//   - If edit spans offset: move offset to end of new text
func TransformOffset(offset ByteOffset, edit Edit) ByteOffset {
	if edit.Range.End <= offset {
		return offset + edit.Delta()
	}
	if edit.Range.Start >= offset {
		return offset
	}
	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformOffsetAll maps an offset of the original text through edits that
// were applied together. Edits must be in the order ApplyEdits takes them
// (descending start), all expressed in original coordinates.
func TransformOffsetAll(offset ByteOffset, edits []Edit) ByteOffset {
	for _, edit := range edits {
		offset = TransformOffset(offset, edit)
	}
	return offset
}

// TransformRange maps a range through a set of applied edits.
// A range that exactly covered a replaced span covers its new text.
func TransformRange(r Range, edits []Edit) Range {
	start := TransformOffsetAll(r.Start, edits)
	end := TransformOffsetAll(r.End, edits)
	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}
