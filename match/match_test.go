package match_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/JohannGerellTobii/jg/internal/core"
	. "github.com/JohannGerellTobii/jg/match"
)

func newLookup() *core.Info[func(int, string) bool, bool] {
	info := core.NewInfo[func(int, string) bool, bool]("func Lookup(int, string) bool")
	info.Result.Set(true)

	return info
}

func lookup(info *core.Info[func(int, string) bool, bool], id int, name string) bool {
	return core.Invoke(info, func(f func(int, string) bool) bool { return f(id, name) }, id, name)
}

func TestBeCalled(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := newLookup()
	g.Expect(info).NotTo(BeCalled())

	lookup(info, 1, "a")

	g.Expect(info).To(BeCalled())
}

func TestBeCalledTimes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := newLookup()
	g.Expect(info).To(BeCalledTimes(0))

	lookup(info, 1, "a")
	lookup(info, 2, "b")

	g.Expect(info).To(BeCalledTimes(2))
	g.Expect(info).NotTo(BeCalledTimes(1))
}

func TestBeCalledTimes_FailureMessageNamesPrototype(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := newLookup()
	lookup(info, 1, "a")

	matcher := BeCalledTimes(3)
	success, err := matcher.Match(info)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(success).To(BeFalse())
	g.Expect(matcher.FailureMessage(info)).To(And(
		ContainSubstring("func Lookup(int, string) bool (called 1 times)"),
		ContainSubstring("to have been called 3 times, but was called 1 times"),
	))
}

func TestCallMatchers_RejectNonMocks(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := BeCalled().Match("not a mock")
	g.Expect(err).To(MatchError(ContainSubstring("not mock auxiliary data")))

	_, err = HaveLastParams(1).Match(42)
	g.Expect(err).To(MatchError(ContainSubstring("has no captured params")))
}

func TestHaveLastParams(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := newLookup()
	lookup(info, 1, "first")
	lookup(info, 42, "Donald")

	g.Expect(info).To(HaveLastParams(42, "Donald"))
	g.Expect(info).To(HaveLastParams(BeNumerically(">", 40), HavePrefix("Don")))
	g.Expect(info).To(HaveLastParams(BeAny, "Donald"))
	g.Expect(info).NotTo(HaveLastParams(1, "first"))
	g.Expect(info).NotTo(HaveLastParams(42))
}

func TestHaveLastParams_BeforeAnyCall(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := newLookup()
	matcher := HaveLastParams(1, "a")

	success, err := matcher.Match(info)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(success).To(BeFalse())
	g.Expect(matcher.FailureMessage(info)).To(ContainSubstring("mock not called"))
}

func TestHaveLastParams_WithoutParameters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	next := core.NewInfo[func() int, int]("func Next() int")
	next.Result.Set(3)

	g.Expect(next).NotTo(HaveLastParams())

	core.Invoke(next, func(f func() int) int { return f() })

	g.Expect(next).To(HaveLastParams())
	g.Expect(next).NotTo(HaveLastParams(3))
}

func TestHaveLastParams_MismatchMessageNamesParam(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := newLookup()
	lookup(info, 7, "x")

	matcher := HaveLastParams(7, "y")
	success, _ := matcher.Match(info)

	g.Expect(success).To(BeFalse())
	g.Expect(matcher.FailureMessage(info)).To(ContainSubstring("param 2"))
}

func TestSatisfyFunc(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	errNegative := errors.New("negative")
	positive := SatisfyFunc(func(id int) error {
		if id < 0 {
			return fmt.Errorf("%w: %d", errNegative, id)
		}

		return nil
	})

	info := newLookup()
	lookup(info, 5, "a")
	g.Expect(info).To(HaveLastParams(positive, BeAny))

	lookup(info, -5, "a")
	g.Expect(info).NotTo(HaveLastParams(positive, BeAny))

	success, err := positive.Match(-1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(success).To(BeFalse())
	g.Expect(positive.FailureMessage(-1)).To(ContainSubstring("negative: -1"))

	_, err = positive.Match("text")
	g.Expect(err).To(MatchError(ContainSubstring("expected int, got string")))
}

func TestBeAny(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, value := range []any{nil, 0, "", struct{}{}, []int{1}} {
		success, err := BeAny.Match(value)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(success).To(BeTrue())
	}
}
