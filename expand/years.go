package expand

import (
	"strconv"
	"strings"

	"github.com/wordforge/wordforge"
)

// DefaultYearsBack is the size of the sliding window of recent years
const DefaultYearsBack = 10

// YearSuffixes appends a sliding window of recent calendar years to every
// token. The window tracks the clock on purpose: the output changes across
// calendar years but stays deterministic within a single run.
type YearSuffixes struct {
	id        string
	yearsBack int
}

// NewYearSuffixes creates the year suffix expander, reading yearsBack from
// its config section when present.
func NewYearSuffixes(id string, conf wordforge.Config) wordforge.Expander {
	return &YearSuffixes{
		id:        id,
		yearsBack: intSetting(conf, id, "yearsBack", DefaultYearsBack),
	}
}

// ID returns the expander identifier
func (e *YearSuffixes) ID() string {
	return e.id
}

// Expand reads the current year once from the context clock and adds every
// year-suffixed token, plus its lowercased form, to the working set.
func (e *YearSuffixes) Expand(ctx *wordforge.Context) {
	currentYear := ctx.Now().Year()
	for _, token := range ctx.Tokens {
		for _, variant := range AppendRecentYears(token, e.yearsBack, currentYear) {
			ctx.Set.Add(variant)
			ctx.Set.Add(lowercase(variant))
		}
	}
}

// AppendRecentYears returns token+year for every year in the inclusive
// range [currentYear-yearsBack+1, currentYear]. Empty token yields nothing.
func AppendRecentYears(token string, yearsBack, currentYear int) []string {
	if strings.TrimSpace(token) == "" || yearsBack <= 0 {
		return nil
	}
	suffixed := make([]string, 0, yearsBack)
	for year := currentYear - yearsBack + 1; year <= currentYear; year++ {
		suffixed = append(suffixed, token+strconv.Itoa(year))
	}
	return suffixed
}
