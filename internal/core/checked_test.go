package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/JohannGerellTobii/jg/internal/core"
)

func TestChecked_UnsetReadFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var value core.Checked[string]

	got, err := value.Get()

	g.Expect(err).To(MatchError(core.ErrUnconfiguredAccess))
	g.Expect(got).To(BeEmpty())
	g.Expect(value.IsSet()).To(BeFalse())
}

func TestChecked_ZeroValueCountsAsSet(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var value core.Checked[int]

	value.Set(0)

	got, err := value.Get()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(BeZero())
	g.Expect(value.IsSet()).To(BeTrue())
}

func TestChecked_SetGetResetProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		var value core.Checked[string]

		written := rapid.SliceOfN(rapid.String(), 1, 10).Draw(rt, "written")
		for _, w := range written {
			value.Set(w)
		}

		got, err := value.Get()
		if err != nil || got != written[len(written)-1] {
			rt.Fatalf("expected %q, got %q (%v)", written[len(written)-1], got, err)
		}

		value.Reset()

		if _, err := value.Get(); err == nil {
			rt.Fatalf("expected an error after Reset")
		}
	})
}
