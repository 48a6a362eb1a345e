package wordforge

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxWords is the cap applied to the output when no explicit
// maxWords setting is configured.
const DefaultMaxWords = 50000

// Generator is the main object of wordforge. It runs every registered
// expander over the cleaned token list, deduplicates the result, enforces
// the size cap and produces the final sorted sequence.
type Generator struct {
	expanders []Expander
	config    Config
	logger    *log.Logger
	clock     func() time.Time
	maxWords  int
	stats     *Metrics
}

// NewGenerator builds a new generator.
func NewGenerator(conf Config, logger *log.Logger) *Generator {
	maxWords := DefaultMaxWords
	if setting, err := conf.GetGlobal(MaxWords); err == nil {
		if parsed, err := strconv.Atoi(setting); err == nil && parsed >= 0 {
			maxWords = parsed
		}
	}
	if logger == nil {
		logger = log.New(os.Stderr, "[wordforge] ", log.LstdFlags)
	}
	return &Generator{
		expanders: make([]Expander, 0, 8),
		config:    conf,
		logger:    logger,
		clock:     time.Now,
		maxWords:  maxWords,
		stats:     &Metrics{},
	}
}

// LoadExpanders registers the expanders to run during generation. They are
// executed in ascending ID order regardless of registration order, so the
// per-token steps always precede the combining and suffixing steps.
func (gen *Generator) LoadExpanders(expanders ...Expander) {
	gen.expanders = append(gen.expanders, expanders...)
	sort.Slice(gen.expanders, func(i, j int) bool {
		return gen.expanders[i].ID() < gen.expanders[j].ID()
	})
}

// SetClock overrides the clock used for year suffix computation.
// Intended for tests; the default is time.Now.
func (gen *Generator) SetClock(clock func() time.Time) {
	if clock != nil {
		gen.clock = clock
	}
}

// CleanTokens trims each raw token and drops the ones that are empty
// afterwards, preserving the original order of the remainder.
func CleanTokens(tokens []string) []string {
	cleaned := make([]string, 0, len(tokens))
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}

// Generate runs all registered expanders over the supplied raw tokens and
// returns the deduplicated, capped, lexicographically sorted candidate
// sequence. It never fails: degenerate input yields an empty sequence.
func (gen *Generator) Generate(tokens ...string) []string {
	gen.stats = &Metrics{}
	cleaned := CleanTokens(tokens)
	gen.stats.NumTokens = len(cleaned)
	gen.stats.NumSkipped = len(tokens) - len(cleaned)
	if len(cleaned) == 0 {
		return []string{}
	}

	ctx := &Context{
		Tokens: cleaned,
		Set:    NewCandidateSet(),
		Clock:  gen.clock,
		Logger: gen.logger,
	}
	for _, expander := range gen.expanders {
		before := ctx.Set.Len()
		expander.Expand(ctx)
		gen.logger.Printf("expander %s added %d candidates", expander.ID(), ctx.Set.Len()-before)
	}

	gen.stats.NumGenerated = ctx.Set.Len()
	sorted := ctx.Set.Sorted()
	if len(sorted) > gen.maxWords {
		gen.stats.NumTruncated = len(sorted) - gen.maxWords
		sorted = sorted[:gen.maxWords]
	}
	return sorted
}

// Report packages the result of the most recent Generate call
func (gen *Generator) Report(candidates []string) *ReportInfo {
	return NewReportInfo(candidates, gen.stats)
}

// Stats returns the metrics of the most recent Generate call
func (gen *Generator) Stats() *Metrics {
	return gen.stats
}
