package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/match"
	"github.com/kdouveno/selescript/internal/selection"
)

const patternTypeName = "selescript.regexp"

// Bridge converts between selection records and Lua values.
type Bridge struct {
	L *lua.LState
}

// NewBridge creates a new Bridge for the given Lua state.
func NewBridge(L *lua.LState) *Bridge {
	return &Bridge{L: L}
}

// Records converts records to a Lua list. Lua indices start at 1; the
// index field of each entry keeps the 0-based record index.
func (b *Bridge) Records(records []*selection.Record) *lua.LTable {
	t := b.L.CreateTable(len(records), 0)
	for _, rec := range records {
		t.Append(b.recordTable(rec))
	}
	return t
}

func (b *Bridge) recordTable(rec *selection.Record) *lua.LTable {
	t := b.L.CreateTable(0, 10)
	t.RawSetString("text", lua.LString(rec.Text))
	t.RawSetString("range", b.rangeTable(rec.Range))
	t.RawSetString("index", lua.LNumber(rec.Index))
	t.RawSetString("lineIndex", lua.LNumber(rec.LineIndex))
	t.RawSetString("isEmpty", lua.LBool(rec.IsEmpty))
	t.RawSetString("isReversed", lua.LBool(rec.IsReversed))
	t.RawSetString("replace", b.method(t, func(L *lua.LState, arg int) {
		rec.Replace(L.CheckString(arg))
	}))

	if rec.Matches != nil {
		matches := b.L.CreateTable(len(rec.Matches), 0)
		for _, m := range rec.Matches {
			matches.Append(b.matchTable(m))
		}
		t.RawSetString("matches", matches)
	}
	return t
}

func (b *Bridge) matchTable(m *selection.Match) *lua.LTable {
	t := b.L.CreateTable(0, 9)
	t.RawSetString("text", lua.LString(m.Text))
	t.RawSetString("captures", b.Strings(m.Captures))
	t.RawSetString("range", b.rangeTable(m.Range))
	t.RawSetString("index", lua.LNumber(m.Index))
	t.RawSetString("lineIndex", lua.LNumber(m.LineIndex))
	t.RawSetString("selected", lua.LBool(m.Selected))
	t.RawSetString("replace", b.method(t, func(L *lua.LState, arg int) {
		m.Replace(L.CheckString(arg))
	}))
	t.RawSetString("select", b.method(t, func(L *lua.LState, arg int) {
		m.Select()
		t.RawSetString("selected", lua.LTrue)
	}))
	return t
}

// method wraps fn so it can be called as self.fn(...) or self:fn(...).
// fn receives the stack index of its first real argument.
func (b *Bridge) method(self *lua.LTable, fn func(L *lua.LState, arg int)) *lua.LFunction {
	return b.L.NewFunction(func(L *lua.LState) int {
		arg := 1
		if t, ok := L.Get(1).(*lua.LTable); ok && t == self {
			arg = 2
		}
		fn(L, arg)
		return 0
	})
}

func (b *Bridge) rangeTable(r document.PointRange) *lua.LTable {
	t := b.L.CreateTable(0, 4)
	t.RawSetString("startLine", lua.LNumber(r.Start.Line))
	t.RawSetString("startCol", lua.LNumber(r.Start.Column))
	t.RawSetString("endLine", lua.LNumber(r.End.Line))
	t.RawSetString("endCol", lua.LNumber(r.End.Column))
	return t
}

// Strings converts a string slice to a Lua list.
func (b *Bridge) Strings(s []string) *lua.LTable {
	t := b.L.CreateTable(len(s), 0)
	for _, v := range s {
		t.Append(lua.LString(v))
	}
	return t
}

// Replacements interprets a transformation's return value.
//
// A string is a replacement for the only record of a single-record run. A
// list of n strings replaces each of the n records in order. Any other value,
// including the selections table itself, means the script staged its own
// edits.
func (b *Bridge) Replacements(v lua.LValue, n int, selections *lua.LTable) ([]string, bool) {
	switch val := v.(type) {
	case lua.LString:
		if n != 1 {
			return nil, false
		}
		return []string{string(val)}, true
	case *lua.LTable:
		if val == selections || val.Len() != n || n == 0 {
			return nil, false
		}
		out := make([]string, n)
		for i := 1; i <= n; i++ {
			s, ok := val.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, false
			}
			out[i-1] = string(s)
		}
		return out, true
	default:
		return nil, false
	}
}

// InstallRegexp registers the global regexp(pattern [, flags]) constructor.
// Invalid patterns raise a Lua error.
func (b *Bridge) InstallRegexp() {
	mt := b.L.NewTypeMetatable(patternTypeName)
	b.L.SetField(mt, "__tostring", b.L.NewFunction(func(L *lua.LState) int {
		p, ok := Pattern(L.CheckUserData(1))
		if !ok {
			L.ArgError(1, "regexp expected")
			return 0
		}
		L.Push(lua.LString(p.String()))
		return 1
	}))

	b.L.SetGlobal("regexp", b.L.NewFunction(func(L *lua.LState) int {
		p, err := match.Compile(L.CheckString(1), L.OptString(2, ""))
		if err != nil {
			L.RaiseError("regexp: %v", errorDetail(err))
			return 0
		}
		ud := L.NewUserData()
		ud.Value = p
		L.SetMetatable(ud, L.GetTypeMetatable(patternTypeName))
		L.Push(ud)
		return 1
	}))
}

// Pattern extracts a compiled pattern created by regexp(...).
func Pattern(v lua.LValue) (*match.Pattern, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, false
	}
	p, ok := ud.Value.(*match.Pattern)
	return p, ok
}

// errorDetail returns the underlying cause of a pattern error, which is
// more useful inside a script than the generic user message.
func errorDetail(err error) error {
	if pe, ok := err.(*match.PatternError); ok && pe.Err != nil {
		return pe.Err
	}
	return err
}
