package script

import (
	"context"
	"errors"
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func evalModule(t *testing.T, state *State, src string) (*Module, error) {
	t.Helper()
	v, err := state.Exec(context.Background(), mustCompile(t, src))
	if err != nil {
		t.Fatalf("Exec error = %v", err)
	}
	return decodeModule("test.lua", v)
}

func TestDecodeModule(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantParams []string
		wantLabel  string
		wantRegexp string
	}{
		{
			name: "bare function",
			src:  `return function(selections) return selections end`,
		},
		{
			name:       "bare function with parameters",
			src:        `return function(selections, prefix, suffix) end`,
			wantParams: []string{"prefix", "suffix"},
		},
		{
			name:      "table with label",
			src:       `return { script = function(s) end, regexp = "Pattern to select" }`,
			wantLabel: "Pattern to select",
		},
		{
			name:       "table with inline regexp",
			src:        `return { script = function(s) end, regexp = regexp("\\d+", "g") }`,
			wantRegexp: `/\d+/g`,
		},
		{
			name: "empty label means no pattern",
			src:  `return { script = function(s) end, regexp = "" }`,
		},
		{
			name: "false means no pattern",
			src:  `return { script = function(s) end, regexp = false }`,
		},
		{
			name:       "method skips self",
			src:        "local M = {}\nfunction M:script(sel, fill) end\nreturn M",
			wantParams: []string{"fill"},
		},
		{
			name:       "explicit params override",
			src:        `return { script = function(s, a, b) end, params = { "Width" } }`,
			wantParams: []string{"Width"},
		},
		{
			name:       "empty params list",
			src:        `return { script = function(s, a) end, params = {} }`,
			wantParams: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			defer state.Close()
			NewBridge(state.L).InstallRegexp()

			mod, err := evalModule(t, state, tt.src)
			if err != nil {
				t.Fatalf("decodeModule error = %v", err)
			}
			if mod.Fn == nil {
				t.Fatal("Fn is nil")
			}
			if len(mod.Params) != len(tt.wantParams) || (len(tt.wantParams) > 0 && !reflect.DeepEqual(mod.Params, tt.wantParams)) {
				t.Errorf("Params = %v, want %v", mod.Params, tt.wantParams)
			}
			if mod.PatternLabel != tt.wantLabel {
				t.Errorf("PatternLabel = %q, want %q", mod.PatternLabel, tt.wantLabel)
			}
			gotRegexp := ""
			if mod.Pattern != nil {
				gotRegexp = mod.Pattern.String()
			}
			if gotRegexp != tt.wantRegexp {
				t.Errorf("Pattern = %q, want %q", gotRegexp, tt.wantRegexp)
			}
			if mod.WantsPattern() != (tt.wantLabel != "" || tt.wantRegexp != "") {
				t.Errorf("WantsPattern = %v", mod.WantsPattern())
			}
		})
	}
}

func TestDecodeModuleErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"nil", `return nil`, ErrNoScriptFunction},
		{"number", `return 42`, ErrNoScriptFunction},
		{"table without script", `return { regexp = "x" }`, ErrNoScriptFunction},
		{"params not a table", `return { script = function() end, params = "a" }`, ErrInvalidParams},
		{"params entry not a string", `return { script = function() end, params = { 1 } }`, ErrInvalidParams},
		{"regexp wrong type", `return { script = function() end, regexp = 3 }`, ErrInvalidRegexp},
		{"regexp true", `return { script = function() end, regexp = true }`, ErrInvalidRegexp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			defer state.Close()

			_, err := evalModule(t, state, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParamNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"selections only", `return function(selections) end`, nil},
		{"no parameters", `return function() end`, nil},
		{"two extra", `return function(sel, width, fill) local x = 1 end`, []string{"width", "fill"}},
		{"vararg", `return function(sel, ...) end`, nil},
		{"named before vararg", `return function(sel, name, ...) end`, []string{"name"}},
		{"comments ignored", "return function(sel, --[[ a, ]] b -- c\n) end", []string{"b"}},
		{"explicit self", `return function(self, sel, width) end`, []string{"width"}},
		{"self only", `return function(self, sel) end`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			defer state.Close()

			v, err := state.Exec(context.Background(), mustCompile(t, tt.src))
			if err != nil {
				t.Fatalf("Exec error = %v", err)
			}
			got := ParamNames(v.(*lua.LFunction))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParamNames = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParamNamesGoFunction(t *testing.T) {
	state := NewState()
	defer state.Close()

	fn := state.L.NewFunction(func(L *lua.LState) int { return 0 })
	if got := ParamNames(fn); got != nil {
		t.Errorf("ParamNames = %v, want nil", got)
	}
	if got := ParamNames(nil); got != nil {
		t.Errorf("ParamNames(nil) = %v, want nil", got)
	}
}

func TestModuleArgs(t *testing.T) {
	state := NewState()
	defer state.Close()

	method, err := evalModule(t, state, "local M = {}\nfunction M:script(sel, fill) end\nreturn M")
	if err != nil {
		t.Fatalf("decodeModule error = %v", err)
	}
	sels := state.L.NewTable()
	args := method.Args(sels, []string{"x"})
	if len(args) != 3 || args[0] != method.Receiver || args[1] != sels || args[2] != lua.LString("x") {
		t.Errorf("method Args = %v", args)
	}

	plain, err := evalModule(t, state, `return function(sel, fill) end`)
	if err != nil {
		t.Fatalf("decodeModule error = %v", err)
	}
	args = plain.Args(sels, []string{"x"})
	if len(args) != 2 || args[0] != sels || args[1] != lua.LString("x") {
		t.Errorf("function Args = %v", args)
	}
}
