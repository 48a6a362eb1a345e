package expand_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/wordforge/wordforge"
	"github.com/wordforge/wordforge/expand"
)

var _ = Describe("PairwiseCombiner", func() {
	conf := wordforge.NewConfig()

	It("should combine every ordered pair in both join styles", func() {
		ctx := newContext("Alice", "Bob")
		expand.NewPairwiseCombiner("W201", conf).Expand(ctx)
		Expect(ctx.Set.Sorted()).Should(ConsistOf(
			"AliceBob", "Alice_Bob", "BobAlice", "Bob_Alice"))
	})

	It("should exclude self pairs by position, not value", func() {
		ctx := newContext("dog", "dog")
		expand.NewPairwiseCombiner("W201", conf).Expand(ctx)
		Expect(ctx.Set.Sorted()).Should(ConsistOf("dogdog", "dog_dog"))
	})

	It("should produce nothing for a single token", func() {
		ctx := newContext("Alice")
		expand.NewPairwiseCombiner("W201", conf).Expand(ctx)
		Expect(ctx.Set.Len()).Should(BeZero())
	})
})
