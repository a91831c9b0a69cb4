// Package stacktrace captures the calling goroutine's stack as symbolized frames.
//
// Typical use, when an invariant is broken:
//
//	for _, frame := range stacktrace.New().IncludeFrameCount(25).SkipFrameCount(1).Capture() {
//	    fmt.Println(frame)
//	}
package stacktrace

import (
	"fmt"
	"runtime"
)

// Frame is one symbolized stack frame.
type Frame struct {
	// Address is the entry address of the frame's function.
	Address uint64
	// AddressDisplacement is the distance from Address to the frame's program counter.
	AddressDisplacement uint64
	SymbolName          string
	File                string
	Line                int
	// LineDisplacement is always 0: the runtime reports no column information.
	LineDisplacement int
}

// String renders the frame as "\t<symbol>[0x<address>+<displacement>] at <file>(<line>)".
func (f Frame) String() string {
	return fmt.Sprintf("\t%s[0x%x+%d] at %s(%d)", f.SymbolName, f.Address, f.AddressDisplacement, f.File, f.Line)
}

// Trace configures a stack capture. The zero value captures nothing.
type Trace struct {
	skip    int
	include int
}

// New returns a Trace that skips no frames and includes none until configured.
func New() Trace {
	return Trace{}
}

// Capture returns up to include frames, starting skip frames above its caller.
func Capture(skip, include int) []Frame {
	return New().SkipFrameCount(skip + 1).IncludeFrameCount(include).Capture()
}

// Capture returns the configured frames, innermost first. Frame 0 is the caller of Capture
// when no frames are skipped. Frames that cannot be symbolized are dropped.
func (t Trace) Capture() []Frame {
	if t.include <= 0 {
		return nil
	}

	pcs := make([]uintptr, t.include)

	// 0 is runtime.Callers, 1 is this method.
	count := runtime.Callers(t.skip+callersOffset, pcs)
	if count == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:count])
	captured := make([]Frame, 0, count)

	for len(captured) < t.include {
		frame, more := frames.Next()

		if frame.Function != "" {
			captured = append(captured, newFrame(frame))
		}

		if !more {
			break
		}
	}

	return captured
}

// IncludeFrameCount sets the maximum number of frames to capture.
func (t Trace) IncludeFrameCount(count int) Trace {
	t.include = count

	return t
}

// SkipFrameCount sets the number of frames to skip above the caller of Capture.
func (t Trace) SkipFrameCount(count int) Trace {
	if count < 0 {
		count = 0
	}

	t.skip = count

	return t
}

// unexported constants.
const (
	callersOffset = 2
)

func newFrame(frame runtime.Frame) Frame {
	var displacement uint64
	if frame.Entry != 0 && frame.PC >= frame.Entry {
		displacement = uint64(frame.PC - frame.Entry)
	}

	return Frame{
		Address:             uint64(frame.Entry),
		AddressDisplacement: displacement,
		SymbolName:          frame.Function,
		File:                frame.File,
		Line:                frame.Line,
	}
}
