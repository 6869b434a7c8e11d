package script

import (
	"context"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State wraps gopher-lua for running one script.
//
// gopher-lua's LState is not goroutine-safe. The mutex serialises calls made
// through State; code holding the raw LState must not share it.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	sandbox *Sandbox
	closed  bool
}

// NewState creates a new sandboxed Lua state.
func NewState() *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	s := &State{L: L, sandbox: NewSandbox(L)}
	s.sandbox.Install()
	return s
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	// package is opened so require can be replaced; its search paths are
	// cleared by the sandbox.
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// Exec runs a compiled chunk and returns its first result, or LNil.
func (s *State) Exec(ctx context.Context, proto *lua.FunctionProto) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil, ErrStateClosed
	}

	fn := s.L.NewFunctionFromProto(proto)
	results, err := s.call(ctx, fn, 1)
	if err != nil {
		return lua.LNil, err
	}
	return results[0], nil
}

// Call calls fn with args and returns its first result, or LNil.
func (s *State) Call(ctx context.Context, fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil, ErrStateClosed
	}

	results, err := s.call(ctx, fn, 1, args...)
	if err != nil {
		return lua.LNil, err
	}
	return results[0], nil
}

// call runs fn with panic recovery and the context attached to the state.
func (s *State) call(ctx context.Context, fn *lua.LFunction, nret int, args ...lua.LValue) (results []lua.LValue, err error) {
	if ctx != nil {
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	top := s.L.GetTop()
	if err := s.L.CallByParam(lua.P{Fn: fn, NRet: nret, Protect: true}, args...); err != nil {
		return nil, unwrapLuaError(err)
	}

	n := s.L.GetTop() - top
	results = make([]lua.LValue, n)
	for i := 0; i < n; i++ {
		results[i] = s.L.Get(top + i + 1)
	}
	s.L.Pop(n)
	return results, nil
}

// unwrapLuaError keeps the message raised by the script and drops the
// stack trace gopher-lua appends.
func unwrapLuaError(err error) error {
	if apiErr, ok := err.(*lua.ApiError); ok {
		if apiErr.Cause != nil {
			return apiErr.Cause
		}
		return fmt.Errorf("%s", apiErr.Object.String())
	}
	return err
}

// Sandbox returns the sandbox of the state.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// Close releases all resources associated with the Lua state.
// After Close is called, all other methods will return ErrStateClosed.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}
