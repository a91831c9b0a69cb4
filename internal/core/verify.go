package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JohannGerellTobii/jg/stacktrace"
)

// Exported variables.
var (
	// ErrNoSubject is reported when a proxy is called with no subject connected.
	ErrNoSubject = errors.New("no subject connected")
	// ErrNotCalled is reported when a parameter is read before the mock was ever called.
	ErrNotCalled = errors.New("mock not called")
	// ErrParamOutOfRange is reported for a parameter index outside the mocked arity.
	ErrParamOutOfRange = errors.New("parameter index out of range")
	// ErrParamType is reported when a parameter is read as the wrong type.
	ErrParamType = errors.New("parameter type mismatch")
	// ErrUnconfiguredAccess is reported when a value is read before it was ever set.
	ErrUnconfiguredAccess = errors.New("unconfigured access")
	// ErrVerification is reported by Verify and VerifyNotNil.
	ErrVerification = errors.New("verification failed")
)

// Handler receives failures that are not bound to a TestReporter.
type Handler func(err error)

// TestReporter is the minimal interface jg needs from test frameworks.
// *testing.T and *testing.B satisfy it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// SetHandler replaces the process-wide failure handler and returns a func restoring the
// previous one. A nil handler restores the default, which panics with the error.
func SetHandler(handler Handler) (restore func()) {
	if handler == nil {
		handler = panicHandler
	}

	settingsMu.Lock()
	previous := failureHandler
	failureHandler = handler
	settingsMu.Unlock()

	return func() {
		settingsMu.Lock()
		failureHandler = previous
		settingsMu.Unlock()
	}
}

// SetOutput redirects failure logs (including their stack traces) to w and returns a func
// restoring the previous destination.
func SetOutput(w io.Writer) (restore func()) {
	settingsMu.Lock()
	previous := failureLog
	failureLog = newFailureLogger(w)
	settingsMu.Unlock()

	return func() {
		settingsMu.Lock()
		failureLog = previous
		settingsMu.Unlock()
	}
}

// Verify reports ErrVerification with the formatted message when condition is false, and
// returns condition.
func Verify(condition bool, format string, args ...any) bool {
	if !condition {
		fail(nil, fmt.Errorf("%w: %s", ErrVerification, fmt.Sprintf(format, args...)), 1)
	}

	return condition
}

// VerifyNotNil reports ErrVerification when ptr is nil, and returns ptr.
func VerifyNotNil[T any](ptr *T) *T {
	if ptr == nil {
		fail(nil, fmt.Errorf("%w: unexpected nil %T", ErrVerification, ptr), 1)
	}

	return ptr
}

// unexported constants.
const (
	failureFrameCount = 10
)

// unexported variables.
var (
	//nolint:gochecknoglobals // process-wide failure configuration
	failureHandler Handler = panicHandler
	//nolint:gochecknoglobals // process-wide failure configuration
	failureLog = newFailureLogger(os.Stderr)
	//nolint:gochecknoglobals // guards failureHandler and failureLog
	settingsMu sync.RWMutex
)

// cleanupRegistrar is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// fail reports err through reporter when one is bound. Otherwise it logs err with the stack
// of fail's caller (skipping skip more frames) and hands it to the failure handler.
func fail(reporter TestReporter, err error, skip int) {
	if reporter != nil {
		reporter.Helper()
		reporter.Fatalf("jg: %v", err)

		return
	}

	settingsMu.RLock()
	logger := failureLog
	handle := failureHandler
	settingsMu.RUnlock()

	stack := zerolog.Arr()
	for _, frame := range stacktrace.Capture(skip+1, failureFrameCount) {
		stack.Str(strings.TrimSpace(frame.String()))
	}

	logger.Error().Err(err).Array("stack", stack).Msg("verification failed")

	handle(err)
}

func newFailureLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(console).With().Str("component", "jg").Logger()
}

func panicHandler(err error) {
	panic(err)
}
