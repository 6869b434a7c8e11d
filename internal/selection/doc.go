// Package selection turns the host's raw selections into the ordered records
// handed to a script.
//
// Build normalizes the selections of one run: every host selection becomes a
// Record carrying its text, range, position in the host order and a line
// group index. When the host reports no selection, or a single caret, one
// Record covering the whole document is synthesized instead.
//
// Records and their Matches stage edits into a shared document.Batch; they
// never modify the document directly.
package selection
