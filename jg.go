// Package jg provides call-tracking mocks for Go tests.
//
// Every mocked function owns auxiliary data: a call counter, the parameters of the most
// recent call, an optional behavior (Func), and for functions with results an optional
// Result. Mocks are generated by the jgmock tool and delegate each call to Invoke or
// InvokeVoid:
//
//	names := NewUserNamesMock(t)
//	names.FindByID_.Result.Set("Donald Duck")
//
//	greeting := greeter.Greet(names, 42)
//
//	if !names.FindByID_.Called() || names.FindByIDLastArgs().P1 != 42 { ... }
//
// This is the public API entry point. Implementation lives in internal/core.
package jg

import (
	"io"

	"github.com/JohannGerellTobii/jg/internal/core"
)

// Exported variables.
var (
	// ErrNoSubject is reported when a proxy is called with no subject connected.
	ErrNoSubject = core.ErrNoSubject
	// ErrNotCalled is reported when a parameter is read before the mock was ever called.
	ErrNotCalled = core.ErrNotCalled
	// ErrParamOutOfRange is reported for a parameter index outside the mocked arity.
	ErrParamOutOfRange = core.ErrParamOutOfRange
	// ErrParamType is reported when a parameter is read as the wrong type.
	ErrParamType = core.ErrParamType
	// ErrUnconfiguredAccess is reported when a result is needed but was never configured.
	ErrUnconfiguredAccess = core.ErrUnconfiguredAccess
	// ErrVerification is reported by Verify and VerifyNotNil.
	ErrVerification = core.ErrVerification
)

// Checked holds a value that must be assigned before it is read.
type Checked[T any] = core.Checked[T]

// Handler receives failures that are not bound to a TestReporter.
type Handler = core.Handler

// Info is the auxiliary data of a mocked function with results.
type Info[F, R any] = core.Info[F, R]

// NewInfo creates the auxiliary data of a mocked function of type F returning R.
func NewInfo[F, R any](prototype string) *Info[F, R] {
	return core.NewInfo[F, R](prototype)
}

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// ParamSource is auxiliary data that captures call parameters.
type ParamSource = core.ParamSource

// Proxy forwards calls of a shared function to a subject connected by a test.
type Proxy[F any] = core.Proxy[F]

// NewProxy creates a proxy for functions of type F.
func NewProxy[F any](prototype string) *Proxy[F] {
	return core.NewProxy[F](prototype)
}

// Resetter is anything that can be returned to its initial state.
type Resetter = core.Resetter

// State is the auxiliary data shared by every mocked function.
type State[F any] = core.State[F]

// TestReporter is the minimal interface jg needs from test frameworks.
type TestReporter = core.TestReporter

// Trackable is auxiliary data that can be bound to a test.
type Trackable = core.Trackable

// VoidInfo is the auxiliary data of a mocked function without results.
type VoidInfo[F any] = core.VoidInfo[F]

// NewVoidInfo creates the auxiliary data of a mocked function of type F without results.
func NewVoidInfo[F any](prototype string) *VoidInfo[F] {
	return core.NewVoidInfo[F](prototype)
}

// Invoke performs one call of a mocked function with results.
func Invoke[F, R any](info *Info[F, R], call func(F) R, args ...any) R {
	return core.Invoke(info, call, args...)
}

// InvokeVoid performs one call of a mocked function without results.
func InvokeVoid[F any](info *VoidInfo[F], call func(F), args ...any) {
	core.InvokeVoid(info, call, args...)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Param returns the index-th (1-based) argument of the most recent call.
func Param[T any](source ParamSource, index int) T {
	return core.Param[T](source, index)
}

// SetHandler replaces the process-wide failure handler.
func SetHandler(handler Handler) (restore func()) {
	return core.SetHandler(handler)
}

// SetOutput redirects failure logs to w.
func SetOutput(w io.Writer) (restore func()) {
	return core.SetOutput(w)
}

// Track binds states to t. When t's cleanup runs they are handed back to an enclosing test that
// tracks them, or reset.
func Track(t TestReporter, states ...Trackable) {
	core.Track(t, states...)
}

// Verify reports ErrVerification with the formatted message when condition is false.
func Verify(condition bool, format string, args ...any) bool {
	return core.Verify(condition, format, args...)
}

// VerifyNotNil reports ErrVerification when ptr is nil, and returns ptr.
func VerifyNotNil[T any](ptr *T) *T {
	return core.VerifyNotNil(ptr)
}
