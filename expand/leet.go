package expand

import (
	"strings"
	"unicode"

	"github.com/wordforge/wordforge"
)

// DefaultMaxSubs bounds how many positions may be substituted at once
const DefaultMaxSubs = 2

// leetMapping is the fixed substitution table consulted for the lowercase
// form of each character. Defined once, never mutated.
var leetMapping = map[rune][]rune{
	'a': {'@', '4'},
	'b': {'8'},
	'e': {'3'},
	'i': {'1', '!'},
	'l': {'1'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'7'},
}

// LeetVariants expands every token into its leetspeak substitution variants
type LeetVariants struct {
	id      string
	maxSubs int
}

// NewLeetVariants creates the leetspeak expander, reading maxSubs from its
// config section when present.
func NewLeetVariants(id string, conf wordforge.Config) wordforge.Expander {
	return &LeetVariants{
		id:      id,
		maxSubs: intSetting(conf, id, "maxSubs", DefaultMaxSubs),
	}
}

// ID returns the expander identifier
func (e *LeetVariants) ID() string {
	return e.id
}

// Expand adds every leet variant of every token, plus the lowercased form
// of each variant, to the working set.
func (e *LeetVariants) Expand(ctx *wordforge.Context) {
	for _, token := range ctx.Tokens {
		for _, variant := range Variants(token, e.maxSubs) {
			ctx.Set.Add(variant)
			ctx.Set.Add(lowercase(variant))
		}
	}
}

// Variants returns the token together with every string obtainable by
// substituting a mapped glyph at up to maxSubs of the token's leet-mappable
// positions. For every subset of r positions, 1 <= r <= min(maxSubs,
// mappable positions), the Cartesian product of glyph choices at the chosen
// positions is produced. Bounding r keeps the output polynomial in token
// length instead of exponential in the number of mappable characters.
func Variants(token string, maxSubs int) []string {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	runes := []rune(token)
	positions := mappablePositions(runes)
	variants := []string{token}
	if len(positions) == 0 || maxSubs <= 0 {
		return variants
	}

	limit := maxSubs
	if limit > len(positions) {
		limit = len(positions)
	}
	for r := 1; r <= limit; r++ {
		for _, chosen := range combinations(positions, r) {
			variants = append(variants, substitute(runes, chosen)...)
		}
	}
	return variants
}

// mappablePositions scans the lowercase form of the token for characters
// with a leet mapping.
func mappablePositions(runes []rune) []int {
	var positions []int
	for i, r := range runes {
		if _, found := leetMapping[unicode.ToLower(r)]; found {
			positions = append(positions, i)
		}
	}
	return positions
}

// combinations enumerates every size-r subset of items in stable order
func combinations(items []int, r int) [][]int {
	var subsets [][]int
	subset := make([]int, r)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == r {
			subsets = append(subsets, append([]int(nil), subset...))
			return
		}
		for i := start; i <= len(items)-(r-depth); i++ {
			subset[depth] = items[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
	return subsets
}

// substitute produces the Cartesian product of glyph choices over the
// chosen positions. Characters outside the chosen positions keep their
// original case.
func substitute(runes []rune, chosen []int) []string {
	var produced []string
	var recurse func(idx int, current []rune)
	recurse = func(idx int, current []rune) {
		if idx == len(chosen) {
			produced = append(produced, string(current))
			return
		}
		pos := chosen[idx]
		for _, glyph := range leetMapping[unicode.ToLower(runes[pos])] {
			next := append([]rune(nil), current...)
			next[pos] = glyph
			recurse(idx+1, next)
		}
	}
	recurse(0, append([]rune(nil), runes...))
	return produced
}
