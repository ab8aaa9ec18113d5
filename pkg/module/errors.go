package module

import "errors"

// ErrModuleNotFound is returned for module IDs with no registered source.
var ErrModuleNotFound = errors.New("module not registered")

// ErrNotRenderFunc is returned when a view module's code is not a
// RenderFunc.
var ErrNotRenderFunc = errors.New("module code is not a render function")

// AsRenderFunc asserts a loaded module's code to a RenderFunc.
func AsRenderFunc(code Code) (RenderFunc, error) {
	fn, ok := code.(RenderFunc)
	if !ok {
		return nil, ErrNotRenderFunc
	}
	return fn, nil
}
