package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/runner"
	"github.com/kdouveno/selescript/internal/selection"
)

func TestJSON(t *testing.T) {
	id := uuid.New()
	res := &runner.Result{
		RunID:   id,
		Script:  "/s/x.lua",
		Pattern: `/\d+/g`,
		Edits: []document.Edit{
			document.NewEdit(document.NewRange(8, 9), "three"),
			document.NewEdit(document.NewRange(1, 2), "one"),
		},
		Selections: []selection.Selection{
			selection.NewSelection(document.NewPoint(0, 6), document.NewPoint(0, 4)),
		},
	}

	out, err := JSON(res, "a\"one\" b")
	if err != nil {
		t.Fatalf("JSON error = %v", err)
	}
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON: %s", out)
	}

	checks := []struct {
		path string
		want string
	}{
		{"run_id", id.String()},
		{"script", "/s/x.lua"},
		{"pattern", `/\d+/g`},
		{"edits.#", "2"},
		{"edits.0.start", "8"},
		{"edits.0.text", "three"},
		{"edits.1.end", "2"},
		{"selections.0.anchor.column", "6"},
		{"selections.0.active.column", "4"},
		{"selections.0.reversed", "true"},
		{"text", `a"one" b`},
	}
	for _, c := range checks {
		if got := gjson.Get(out, c.path).String(); got != c.want {
			t.Errorf("%s = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestJSONWithoutPattern(t *testing.T) {
	out, err := JSON(&runner.Result{RunID: uuid.New(), Script: "s.lua"}, "")
	if err != nil {
		t.Fatalf("JSON error = %v", err)
	}
	for _, path := range []string{"pattern", "selections", "text"} {
		if gjson.Get(out, path).Exists() {
			t.Errorf("%s should be omitted: %s", path, out)
		}
	}
	if !gjson.Get(out, "edits").IsArray() || gjson.Get(out, "edits.#").Int() != 0 {
		t.Errorf("edits = %s", gjson.Get(out, "edits").Raw)
	}
}
