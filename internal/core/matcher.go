package core

import (
	"fmt"
	"reflect"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// MatchParams checks captured parameters against expected values, each of which may be a
// Matcher. It returns nil on a match, or an error describing the first mismatch.
func MatchParams(actual, expected []any) error {
	if len(actual) != len(expected) {
		//nolint:err113 // validation error with dynamic context
		return fmt.Errorf("expected %d params, got %d", len(expected), len(actual))
	}

	for index, want := range expected {
		ok, msg := MatchValue(actual[index], want)
		if !ok {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("param %d: %s", index+1, msg)
		}
	}

	return nil
}

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// Otherwise, uses reflect.DeepEqual for comparison.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	if matcher, ok := expected.(Matcher); ok {
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if reflect.DeepEqual(actual, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("expected %#v, got %#v", expected, actual)
}
