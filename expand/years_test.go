package expand_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/wordforge/wordforge"
	"github.com/wordforge/wordforge/expand"
)

var _ = Describe("YearSuffixes", func() {
	Context("AppendRecentYears", func() {
		It("should cover the inclusive sliding window", func() {
			suffixed := expand.AppendRecentYears("dog", 3, 2025)
			Expect(suffixed).Should(Equal([]string{"dog2023", "dog2024", "dog2025"}))
		})

		It("should return nothing for an empty token", func() {
			Expect(expand.AppendRecentYears("", 3, 2025)).Should(BeEmpty())
		})

		It("should return nothing for a non-positive window", func() {
			Expect(expand.AppendRecentYears("dog", 0, 2025)).Should(BeEmpty())
		})
	})

	Context("as an expander", func() {
		It("should read the year window from its config section", func() {
			conf := wordforge.NewConfig()
			conf.Set("W103", map[string]interface{}{"yearsBack": 2})

			ctx := newContext("Dog")
			expand.NewYearSuffixes("W103", conf).Expand(ctx)
			Expect(ctx.Set.Sorted()).Should(ConsistOf(
				"Dog2024", "Dog2025", "dog2024", "dog2025"))
		})

		It("should read the current year from the context clock", func() {
			ctx := newContext("dog")
			expand.NewYearSuffixes("W103", wordforge.NewConfig()).Expand(ctx)
			Expect(ctx.Set.Contains("dog2025")).Should(BeTrue())
			Expect(ctx.Set.Contains("dog2016")).Should(BeTrue())
			Expect(ctx.Set.Contains("dog2015")).Should(BeFalse())
		})
	})
})
