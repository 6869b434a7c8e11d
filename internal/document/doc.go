// Package document provides the text model shared by the script runner and
// its hosts.
//
// The package provides:
//
//   - Coordinate types: ByteOffset, Point (line/column) and Range (byte span)
//   - The Document interface a host implements to expose its text
//   - Buffer, an in-memory Document used by the terminal host and tests
//   - Batch, the pending edit set of a single script run
//   - Offset transformation through committed edits
//
// Basic usage:
//
//	buf := document.NewBuffer("hello world")
//
//	batch := document.NewBatch(buf)
//	batch.Replace(document.NewRange(0, 5), "HELLO")
//
//	edits, err := batch.Edits()
//	if err != nil {
//	    return err
//	}
//	if err := buf.ApplyEdits(edits); err != nil {
//	    return err
//	}
//
// Position Types:
//
//   - ByteOffset: raw byte position in the text
//   - Point: line and column, both 0-indexed, column in bytes
//   - PointRange: a Point pair, the shape scripts see
//
// Batch collects replacements without touching the document. Edits returns
// them sorted by descending start offset, which is the order ApplyEdits
// requires, so the whole batch lands in one step or not at all.
package document
