package script

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

func mustCompile(t *testing.T, src string) *lua.FunctionProto {
	t.Helper()
	chunk, err := parse.Parse(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	proto, err := lua.Compile(chunk, "test")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return proto
}

func TestStateExec(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want lua.LValue
	}{
		{"number", `return 1 + 2`, lua.LNumber(3)},
		{"string", `return string.upper("abc")`, lua.LString("ABC")},
		{"nothing", `local x = 1`, lua.LNil},
		{"first of many", `return "a", "b"`, lua.LString("a")},
		{"table lib", `local t = {3, 1, 2}; table.sort(t); return t[1]`, lua.LNumber(1)},
		{"math lib", `return math.max(4, 9)`, lua.LNumber(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			defer state.Close()

			got, err := state.Exec(context.Background(), mustCompile(t, tt.src))
			if err != nil {
				t.Fatalf("Exec error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Exec = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateExecRuntimeError(t *testing.T) {
	state := NewState()
	defer state.Close()

	_, err := state.Exec(context.Background(), mustCompile(t, `error("boom")`))
	if err == nil {
		t.Fatal("Exec should fail")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want it to contain boom", err)
	}
}

func TestStateCall(t *testing.T) {
	state := NewState()
	defer state.Close()

	v, err := state.Exec(context.Background(), mustCompile(t, `return function(a, b) return a .. b end`))
	if err != nil {
		t.Fatalf("Exec error = %v", err)
	}
	fn, ok := v.(*lua.LFunction)
	if !ok {
		t.Fatalf("Exec returned %T, want function", v)
	}

	got, err := state.Call(context.Background(), fn, lua.LString("foo"), lua.LString("bar"))
	if err != nil {
		t.Fatalf("Call error = %v", err)
	}
	if got != lua.LString("foobar") {
		t.Errorf("Call = %v, want foobar", got)
	}

	if top := state.L.GetTop(); top != 0 {
		t.Errorf("stack top after Call = %d, want 0", top)
	}
}

func TestStateCallCancelled(t *testing.T) {
	state := NewState()
	defer state.Close()

	v, err := state.Exec(context.Background(), mustCompile(t, `return function() while true do end end`))
	if err != nil {
		t.Fatalf("Exec error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := state.Call(ctx, v.(*lua.LFunction)); err == nil {
		t.Fatal("Call should fail once the context expires")
	}
	if ctx.Err() == nil {
		t.Error("context should be done")
	}
}

func TestStateClosed(t *testing.T) {
	state := NewState()
	state.Close()
	state.Close()

	if _, err := state.Exec(context.Background(), mustCompile(t, `return 1`)); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Exec error = %v, want ErrStateClosed", err)
	}
	if _, err := state.Call(context.Background(), nil); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Call error = %v, want ErrStateClosed", err)
	}
}
