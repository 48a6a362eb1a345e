package expand_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/wordforge/wordforge"
	"github.com/wordforge/wordforge/expand"
)

func newContext(tokens ...string) *wordforge.Context {
	return &wordforge.Context{
		Tokens: tokens,
		Set:    wordforge.NewCandidateSet(),
		Clock: func() time.Time {
			return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

var _ = Describe("CaseVariants", func() {
	conf := wordforge.NewConfig()

	It("should produce the four case-normalized forms", func() {
		ctx := newContext("aLiCe")
		expand.NewCaseVariants("W101", conf).Expand(ctx)
		Expect(ctx.Set.Sorted()).Should(ConsistOf(
			"aLiCe", "alice", "ALICE", "Alice"))
	})

	It("should produce a single form for a case-insensitive token", func() {
		ctx := newContext("1990")
		expand.NewCaseVariants("W101", conf).Expand(ctx)
		Expect(ctx.Set.Sorted()).Should(ConsistOf("1990"))
	})

	It("should capitalize only the first character", func() {
		ctx := newContext("mcFLUFFY")
		expand.NewCaseVariants("W101", conf).Expand(ctx)
		Expect(ctx.Set.Contains("Mcfluffy")).Should(BeTrue())
	})
})
