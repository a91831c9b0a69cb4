package core

import "fmt"

// Invoke performs one call of a mocked function with results. It records args, produces the
// result through call(Func) when Func is set or else from info.Result, and counts the call once
// it is complete. A call with neither configured reports ErrUnconfiguredAccess.
//
// Generated code supplies call, which applies the behavior to the typed arguments.
func Invoke[F, R any](info *Info[F, R], call func(F) R, args ...any) R {
	info.record(args)
	defer info.increment()

	if fn, ok := info.behavior(); ok {
		return call(fn)
	}

	result, err := info.Result.Get()
	if err != nil {
		info.report(fmt.Errorf("%w: neither Func nor Result is set for %s", err, info.prototype))
	}

	return result
}

// InvokeVoid performs one call of a mocked function without results. It records args, calls
// call(Func) when Func is set, and counts the call once it is complete.
func InvokeVoid[F any](info *VoidInfo[F], call func(F), args ...any) {
	info.record(args)
	defer info.increment()

	if fn, ok := info.behavior(); ok {
		call(fn)
	}
}
