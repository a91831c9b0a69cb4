// Package match provides gomega matchers over mock auxiliary data, and argument matchers for
// use with HaveLastParams. It is designed to be dot-imported alongside gomega:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/JohannGerellTobii/jg/match"
//	)
//
//	Expect(names.FindByID_).To(BeCalledTimes(1))
//	Expect(names.FindByID_).To(HaveLastParams(BeNumerically("<", 4711)))
package match

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/JohannGerellTobii/jg/internal/core"
)

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular parameter.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny core.Matcher = anyMatcher{}

// BeCalled succeeds when the mock was called at least once.
func BeCalled() types.GomegaMatcher {
	return &calledMatcher{}
}

// BeCalledTimes succeeds when the mock was called exactly count times.
func BeCalledTimes(count int) types.GomegaMatcher {
	return &calledTimesMatcher{expected: count}
}

// HaveLastParams succeeds when the most recent call's parameters match expected, in order.
// Each expected value is either a matcher (gomega or this package) or compared with
// reflect.DeepEqual.
func HaveLastParams(expected ...any) types.GomegaMatcher {
	return &lastParamsMatcher{expected: expected}
}

// SatisfyFunc returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	Expect(mock).To(HaveLastParams(SatisfyFunc(func(id int) error {
//	    if id < 0 { return fmt.Errorf("expected positive, got %d", id) }
//	    return nil
//	})))
func SatisfyFunc[T any](predicate func(T) error) core.Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

// unexported variables.
var (
	errNotAMock     = errors.New("not mock auxiliary data")
	errTypeMismatch = errors.New("type mismatch")
)

// anyMatcher is the implementation of the BeAny matcher.
type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type calledMatcher struct{}

func (m *calledMatcher) FailureMessage(actual any) string {
	return format.Message(describe(actual), "to have been called")
}

func (m *calledMatcher) Match(actual any) (bool, error) {
	state, err := counterOf(actual)
	if err != nil {
		return false, err
	}

	return state.Called(), nil
}

func (m *calledMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(describe(actual), "not to have been called")
}

type calledTimesMatcher struct {
	expected int
	actual   int
}

func (m *calledTimesMatcher) FailureMessage(actual any) string {
	return format.Message(describe(actual), fmt.Sprintf("to have been called %d times, but was called %d times", m.expected, m.actual))
}

func (m *calledTimesMatcher) Match(actual any) (bool, error) {
	state, err := counterOf(actual)
	if err != nil {
		return false, err
	}

	m.actual = state.Count()

	return m.actual == m.expected, nil
}

func (m *calledTimesMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(describe(actual), fmt.Sprintf("not to have been called %d times", m.expected))
}

type counter interface {
	Called() bool
	Count() int
	Prototype() string
}

type lastParamsMatcher struct {
	expected []any
	mismatch error
}

func (m *lastParamsMatcher) FailureMessage(actual any) string {
	return format.Message(describe(actual), fmt.Sprintf("to have last params matching: %v", m.mismatch))
}

func (m *lastParamsMatcher) Match(actual any) (bool, error) {
	source, ok := actual.(paramHolder)
	if !ok {
		return false, fmt.Errorf("%w: %T has no captured params", errNotAMock, actual)
	}

	if !source.Called() {
		m.mismatch = fmt.Errorf("%w: %s", core.ErrNotCalled, source.Prototype())

		return false, nil
	}

	// functions without parameters capture none
	params, _ := source.Params()

	m.mismatch = core.MatchParams(params, m.expected)

	return m.mismatch == nil, nil
}

func (m *lastParamsMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(describe(actual), fmt.Sprintf("not to have last params %v", m.expected))
}

type paramHolder interface {
	Called() bool
	Params() ([]any, bool)
	Prototype() string
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %s, got %T", errTypeMismatch, reflect.TypeFor[T](), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}

func counterOf(actual any) (counter, error) {
	state, ok := actual.(counter)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no call counter", errNotAMock, actual)
	}

	return state, nil
}

// describe renders mock state by prototype instead of dumping its internals.
func describe(actual any) any {
	if state, ok := actual.(counter); ok {
		return fmt.Sprintf("%s (called %d times)", state.Prototype(), state.Count())
	}

	return actual
}
