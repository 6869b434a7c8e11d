// Package report renders run results as JSON.
package report

import (
	"github.com/tidwall/sjson"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/runner"
	"github.com/kdouveno/selescript/internal/selection"
)

// JSON returns res as a JSON object:
//
//	{
//	  "run_id": "...",
//	  "script": "/path/to/script.lua",
//	  "pattern": "/\\d+/g",
//	  "edits": [{"start": 3, "end": 6, "text": "B"}],
//	  "selections": [{"anchor": {"line": 0, "column": 4}, "active": {...}, "reversed": false}],
//	  "text": "..."
//	}
//
// pattern and selections are omitted when the run used no pattern. text is
// included when non-empty.
func JSON(res *runner.Result, text string) (string, error) {
	out := "{}"
	var err error

	set := func(path string, v any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, v)
	}

	set("run_id", res.RunID.String())
	set("script", res.Script)
	if res.Pattern != "" {
		set("pattern", res.Pattern)
	}

	set("edits", []any{})
	for _, e := range res.Edits {
		set("edits.-1", editObject(e))
	}

	if res.Selections != nil {
		set("selections", []any{})
		for _, s := range res.Selections {
			set("selections.-1", selectionObject(s))
		}
	}

	if text != "" {
		set("text", text)
	}
	if err != nil {
		return "", err
	}
	return out, nil
}

func editObject(e document.Edit) map[string]any {
	return map[string]any{
		"start": e.Range.Start,
		"end":   e.Range.End,
		"text":  e.NewText,
	}
}

func selectionObject(s selection.Selection) map[string]any {
	return map[string]any{
		"anchor":   pointObject(s.Anchor),
		"active":   pointObject(s.Active),
		"reversed": s.IsReversed(),
	}
}

func pointObject(p document.Point) map[string]any {
	return map[string]any{"line": p.Line, "column": p.Column}
}
