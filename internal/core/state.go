package core

import (
	"fmt"
	"reflect"
	"sync"
)

// Info is the auxiliary data of a mocked function with results. R is the single result type,
// or a struct holding every result for multi-result functions.
type Info[F, R any] struct {
	State[F]

	// Result is returned by calls when Func is unset.
	Result Checked[R]
}

// NewInfo creates the auxiliary data of a mocked function of type F returning R.
// It panics if F is not a function type.
func NewInfo[F, R any](prototype string) *Info[F, R] {
	info := &Info[F, R]{}
	info.init(prototype)

	return info
}

// Reset restores the state at construction, clearing Result as well.
func (i *Info[F, R]) Reset() {
	i.State.Reset()
	i.Result.Reset()
}

// ParamSource is auxiliary data that captures call parameters.
type ParamSource interface {
	param(index int) (any, error)
	report(err error)
}

// Resetter is anything that can be returned to its initial state.
type Resetter interface {
	Reset()
}

// State is the auxiliary data every mocked function has: the call counter, the parameters of
// the most recent call, and the behavior slot.
type State[F any] struct {
	// Func, when set, replaces the mocked function. It is called with the actual arguments.
	Func F

	mu        sync.Mutex
	prototype string
	arity     int
	count     int
	params    []any
	reporter  TestReporter
}

// Arity returns the number of parameters of the mocked function.
func (s *State[F]) Arity() int {
	return s.arity
}

// Attach routes failures of this state to reporter instead of the process-wide handler.
// A nil reporter detaches.
func (s *State[F]) Attach(reporter TestReporter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reporter = reporter
}

// Called reports whether the mocked function was called at least once.
func (s *State[F]) Called() bool {
	return s.Count() > 0
}

// Count returns how many times the mocked function was called.
func (s *State[F]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.count
}

// Params returns a copy of the most recent call's arguments, and false if there was no call
// yet or the function takes no parameters.
func (s *State[F]) Params() ([]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.params == nil {
		return nil, false
	}

	return append([]any(nil), s.params...), true
}

// Prototype returns the signature text of the mocked function.
func (s *State[F]) Prototype() string {
	return s.prototype
}

// Reset restores the state at construction. The prototype and the attached reporter are kept.
func (s *State[F]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero F

	s.Func = zero
	s.count = 0
	s.params = nil
}

// String returns the prototype.
func (s *State[F]) String() string {
	return s.prototype
}

// behavior returns Func and whether it is set.
func (s *State[F]) behavior() (F, bool) {
	fn := s.Func

	return fn, !reflect.ValueOf(&fn).Elem().IsNil()
}

func (s *State[F]) increment() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
}

func (s *State[F]) init(prototype string) {
	fnType := reflect.TypeFor[F]()
	if fnType.Kind() != reflect.Func {
		panic(fmt.Sprintf("jg: mocked signature of %q must be a function type, got %s", prototype, fnType))
	}

	s.prototype = prototype
	s.arity = fnType.NumIn()
}

func (s *State[F]) param(index int) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 1 || index > s.arity {
		return nil, fmt.Errorf("%w: %d not in 1..%d for %s", ErrParamOutOfRange, index, s.arity, s.prototype)
	}

	if s.params == nil {
		return nil, fmt.Errorf("%w: parameter %d of %s read before any call", ErrNotCalled, index, s.prototype)
	}

	return s.params[index-1], nil
}

// record captures a copy of args as the most recent call's parameters.
func (s *State[F]) record(args []any) {
	if len(args) != s.arity {
		panic(fmt.Sprintf("jg: %s takes %d arguments, %d were recorded", s.prototype, s.arity, len(args)))
	}

	if s.arity == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	params := make([]any, len(args))
	for i, arg := range args {
		params[i] = snapshot(arg)
	}

	s.params = params
}

func (s *State[F]) report(err error) {
	s.mu.Lock()
	reporter := s.reporter
	s.mu.Unlock()

	fail(reporter, err, 2)
}

// VoidInfo is the auxiliary data of a mocked function without results.
type VoidInfo[F any] struct {
	State[F]
}

// NewVoidInfo creates the auxiliary data of a mocked function of type F without results.
// It panics if F is not a function type.
func NewVoidInfo[F any](prototype string) *VoidInfo[F] {
	info := &VoidInfo[F]{}
	info.init(prototype)

	return info
}

// Param returns the index-th (1-based) argument of the most recent call. Reading before any
// call, outside the arity, or as the wrong type is reported as a failure and yields the zero
// value.
func Param[T any](source ParamSource, index int) T {
	var zero T

	value, err := source.param(index)
	if err != nil {
		source.report(err)

		return zero
	}

	if value == nil {
		return zero
	}

	typed, ok := value.(T)
	if !ok {
		source.report(fmt.Errorf("%w: parameter %d is %T, not %s", ErrParamType, index, value, reflect.TypeFor[T]()))

		return zero
	}

	return typed
}

// snapshot copies slice and map arguments one level deep, so the caller changing them after
// the call does not change the recorded parameters.
func snapshot(arg any) any {
	value := reflect.ValueOf(arg)

	switch value.Kind() {
	case reflect.Slice:
		if value.IsNil() {
			return arg
		}

		clone := reflect.MakeSlice(value.Type(), value.Len(), value.Len())
		reflect.Copy(clone, value)

		return clone.Interface()
	case reflect.Map:
		if value.IsNil() {
			return arg
		}

		clone := reflect.MakeMapWithSize(value.Type(), value.Len())

		iter := value.MapRange()
		for iter.Next() {
			clone.SetMapIndex(iter.Key(), iter.Value())
		}

		return clone.Interface()
	default:
		return arg
	}
}
