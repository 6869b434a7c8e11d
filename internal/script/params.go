package script

import (
	lua "github.com/yuin/gopher-lua"
)

// ParamNames returns the declared parameter names of fn after the one that
// receives the selections. A leading self, as declared by
// function t:script(...), is skipped too. Go functions and functions with
// only a vararg list have no names.
func ParamNames(fn *lua.LFunction) []string {
	locals := parameters(fn)
	if IsMethod(fn) {
		locals = locals[1:]
	}
	if len(locals) <= 1 {
		return nil
	}

	names := make([]string, 0, len(locals)-1)
	for _, local := range locals[1:] {
		names = append(names, local.Name)
	}
	return names
}

// IsMethod reports whether fn takes self as its first parameter.
func IsMethod(fn *lua.LFunction) bool {
	locals := parameters(fn)
	return len(locals) > 0 && locals[0].Name == "self"
}

// parameters returns the debug locals of fn's declared parameters.
// Parameters are the first locals registered in a function.
func parameters(fn *lua.LFunction) []*lua.DbgLocalInfo {
	if fn == nil || fn.IsG || fn.Proto == nil {
		return nil
	}
	proto := fn.Proto
	n := int(proto.NumParameters)
	if n > len(proto.DbgLocals) {
		n = len(proto.DbgLocals)
	}
	return proto.DbgLocals[:n]
}
