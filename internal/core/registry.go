package core

import (
	"slices"
	"sync"
)

// Trackable is auxiliary data that can be bound to a test.
type Trackable interface {
	Resetter
	Attach(reporter TestReporter)
}

// Track binds states to t: their failures are reported through t, and when t's cleanup runs
// (if t supports cleanups, like *testing.T) every state is handed back to the test that tracked
// it before t, or reset and detached when there is none.
// Tracking the same state twice under one test is harmless.
func Track(t TestReporter, states ...Trackable) {
	registryMu.Lock()
	defer registryMu.Unlock()

	tracked, ok := registry[t]
	if !ok {
		tracked = make(map[Trackable]struct{}, len(states))
		registry[t] = tracked

		if registrar, canCleanup := t.(cleanupRegistrar); canCleanup {
			registrar.Cleanup(func() { release(t) })
		}
	}

	for _, state := range states {
		if _, already := tracked[state]; already {
			continue
		}

		tracked[state] = struct{}{}
		owners[state] = append(owners[state], t)

		state.Attach(t)
	}
}

// Tracked returns how many states are tracked under t.
func Tracked(t TestReporter) int {
	registryMu.Lock()
	defer registryMu.Unlock()

	return len(registry[t])
}

// unexported variables.
var (
	//nolint:gochecknoglobals // tests tracking each state, innermost last
	owners = make(map[Trackable][]TestReporter)
	//nolint:gochecknoglobals // states tracked per test, released by the test's cleanup
	registry = make(map[TestReporter]map[Trackable]struct{})
	//nolint:gochecknoglobals // guards registry and owners
	registryMu sync.Mutex
)

// release stops tracking every state under t. A state still tracked by another test is attached
// to the innermost of those; otherwise it is reset and detached.
func release(t TestReporter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	for state := range registry[t] {
		remaining := slices.DeleteFunc(owners[state], func(owner TestReporter) bool { return owner == t })

		if len(remaining) > 0 {
			owners[state] = remaining

			state.Attach(remaining[len(remaining)-1])

			continue
		}

		delete(owners, state)

		state.Reset()
		state.Attach(nil)
	}

	delete(registry, t)
}
