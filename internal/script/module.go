package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/kdouveno/selescript/internal/match"
)

// Module is the evaluated export of a script file.
type Module struct {
	Path string

	// Fn is the transformation function.
	Fn *lua.LFunction

	// Pattern is set when the script supplies a compiled regexp(...).
	Pattern *match.Pattern

	// PatternLabel is set when the script asks the user for a pattern,
	// and is used as the prompt.
	PatternLabel string

	// Params are the names of the parameters bound after the selections.
	Params []string

	// Receiver is passed as self when Fn is declared as a method. It is the
	// exported table, or nil for a bare function.
	Receiver lua.LValue
}

// Args builds the call arguments for Fn: the receiver if Fn is a method,
// then the selections, then the bound parameter values.
func (m *Module) Args(selections lua.LValue, values []string) []lua.LValue {
	args := make([]lua.LValue, 0, len(values)+2)
	if IsMethod(m.Fn) {
		recv := m.Receiver
		if recv == nil {
			recv = lua.LNil
		}
		args = append(args, recv)
	}
	args = append(args, selections)
	for _, v := range values {
		args = append(args, lua.LString(v))
	}
	return args
}

// WantsPattern reports whether the run must decorate records with matches.
func (m *Module) WantsPattern() bool {
	return m.Pattern != nil || m.PatternLabel != ""
}

// decodeModule interprets the value returned by a script chunk.
func decodeModule(path string, v lua.LValue) (*Module, error) {
	mod := &Module{Path: path}

	switch val := v.(type) {
	case *lua.LFunction:
		mod.Fn = val
	case *lua.LTable:
		fn, ok := val.RawGetString("script").(*lua.LFunction)
		if !ok {
			return nil, ErrNoScriptFunction
		}
		mod.Fn = fn
		mod.Receiver = val

		if err := decodeRegexp(mod, val.RawGetString("regexp")); err != nil {
			return nil, err
		}

		if pv := val.RawGetString("params"); pv != lua.LNil {
			names, err := decodeParams(pv)
			if err != nil {
				return nil, err
			}
			mod.Params = names
			return mod, nil
		}
	default:
		return nil, ErrNoScriptFunction
	}

	mod.Params = ParamNames(mod.Fn)
	return mod, nil
}

func decodeRegexp(mod *Module, v lua.LValue) error {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		if val {
			return fmt.Errorf("%w: got boolean", ErrInvalidRegexp)
		}
		return nil
	case lua.LString:
		mod.PatternLabel = string(val)
		return nil
	case *lua.LUserData:
		p, ok := Pattern(val)
		if !ok {
			return ErrInvalidRegexp
		}
		mod.Pattern = p
		return nil
	default:
		return fmt.Errorf("%w: got %s", ErrInvalidRegexp, v.Type())
	}
}

func decodeParams(v lua.LValue) ([]string, error) {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil, ErrInvalidParams
	}
	names := make([]string, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		s, ok := t.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is %s", ErrInvalidParams, i, t.RawGetInt(i).Type())
		}
		names = append(names, string(s))
	}
	return names, nil
}
