package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// WriteDiff writes a line diff from before to after. Unchanged lines are
// prefixed with two spaces, removed lines with "- " and added lines with "+ ".
func WriteDiff(w io.Writer, before, after string, colored bool) error {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if !colored {
		del.DisableColor()
		ins.DisableColor()
	}

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			var err error
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				_, err = del.Fprintf(w, "- %s\n", line)
			case diffmatchpatch.DiffInsert:
				_, err = ins.Fprintf(w, "+ %s\n", line)
			default:
				_, err = fmt.Fprintf(w, "  %s\n", line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// splitLines splits diff text into lines. diffmatchpatch keeps the trailing
// newline of each line, which would otherwise produce an empty last element.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
