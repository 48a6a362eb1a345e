package wordforge_test

import (
	"io"
	"log"
	"sort"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/wordforge/wordforge"
	"github.com/wordforge/wordforge/expand"
)

// fixedClock pins generation to a known calendar date
func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func newTestGenerator(conf wordforge.Config, filters ...expand.Filter) *wordforge.Generator {
	generator := wordforge.NewGenerator(conf, log.New(io.Discard, "", 0))
	generator.SetClock(fixedClock(2025))
	generator.LoadExpanders(expand.Generate(filters...).Expanders(conf)...)
	return generator
}

var _ = Describe("Generator", func() {
	var conf wordforge.Config
	BeforeEach(func() {
		conf = wordforge.NewConfig()
	})

	Context("with degenerate input", func() {
		It("should return an empty sequence for no tokens", func() {
			generator := newTestGenerator(conf)
			Expect(generator.Generate()).Should(BeEmpty())
		})

		It("should return an empty sequence when all tokens are blank", func() {
			generator := newTestGenerator(conf)
			Expect(generator.Generate("", "   ", "\t")).Should(BeEmpty())
			Expect(generator.Stats().NumSkipped).Should(Equal(3))
		})

		It("should trim tokens before expansion", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("  Alice  ")
			Expect(candidates).Should(ContainElement("Alice"))
			Expect(candidates).ShouldNot(ContainElement("  Alice  "))
		})
	})

	Context("when generating from a single token", func() {
		It("should contain all case variants of the token", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("Alice")
			Expect(candidates).Should(ContainElements("Alice", "alice", "ALICE"))
		})

		It("should contain leet variants of the token", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("Alice")
			Expect(candidates).Should(ContainElements("4lice", "@lice"))
		})

		It("should contain year suffixed variants and their lowercase forms", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("Dog")
			Expect(candidates).Should(ContainElements("Dog2025", "dog2025", "Dog2016"))
			Expect(candidates).ShouldNot(ContainElement("Dog2015"))
		})

		It("should not contain year suffixes when the expander is excluded", func() {
			generator := newTestGenerator(conf, expand.NewFilter(true, "W103"))
			candidates := generator.Generate("Dog")
			Expect(candidates).ShouldNot(ContainElement("Dog2025"))
		})
	})

	Context("when generating from multiple tokens", func() {
		It("should combine tokens pairwise in both directions", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("Alice", "Bob")
			Expect(candidates).Should(ContainElements(
				"AliceBob", "BobAlice", "Alice_Bob", "Bob_Alice"))
		})
	})

	Context("output sequence guarantees", func() {
		It("should be strictly ascending with no duplicates", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("Alice", "Fluffy", "1990")
			Expect(sort.StringsAreSorted(candidates)).Should(BeTrue())
			for i := 1; i < len(candidates); i++ {
				Expect(candidates[i-1] < candidates[i]).Should(BeTrue())
			}
		})

		It("should be idempotent for identical inputs on the same day", func() {
			first := newTestGenerator(conf).Generate("Alice", "Fluffy")
			second := newTestGenerator(conf).Generate("Alice", "Fluffy")
			Expect(first).Should(Equal(second))
		})

		It("should respect the size cap with deterministic sorted truncation", func() {
			conf.SetGlobal(wordforge.MaxWords, "10")
			capped := newTestGenerator(conf).Generate("Alice", "Fluffy")

			uncapped := newTestGenerator(wordforge.NewConfig()).Generate("Alice", "Fluffy")
			Expect(capped).Should(HaveLen(10))
			Expect(capped).Should(Equal(uncapped[:10]))
		})

		It("should record truncation in the metrics", func() {
			conf.SetGlobal(wordforge.MaxWords, "10")
			generator := newTestGenerator(conf)
			generator.Generate("Alice", "Fluffy")
			stats := generator.Stats()
			Expect(stats.NumTruncated).Should(Equal(stats.NumGenerated - 10))
		})
	})

	Context("suffix expansion", func() {
		It("should not suffix candidates produced within the same pass", func() {
			// years are excluded so no base naturally ends in a catalog year
			generator := newTestGenerator(conf, expand.NewFilter(true, "W103"))
			candidates := generator.Generate("qqq")
			catalog := []string{"123", "!", "@", "2020", "2021", "2022"}
			for _, candidate := range candidates {
				rest := candidate
				for _, suffix := range catalog {
					if strings.HasSuffix(rest, suffix) {
						rest = strings.TrimSuffix(rest, suffix)
						break
					}
				}
				for _, suffix := range catalog {
					Expect(strings.HasSuffix(rest, suffix)).Should(BeFalse(),
						"candidate %q carries two catalog suffixes", candidate)
				}
			}
		})
	})

	Context("reporting", func() {
		It("should package candidates and stats with a run id", func() {
			generator := newTestGenerator(conf)
			candidates := generator.Generate("Alice")
			data := generator.Report(candidates)
			Expect(data.RunID).ShouldNot(BeEmpty())
			Expect(data.Candidates).Should(Equal(candidates))
			Expect(data.Stats.NumTokens).Should(Equal(1))
		})
	})
})
