package expand

import "github.com/wordforge/wordforge"

// PairwiseCombiner joins tokens two at a time. Both orders of a pair are
// produced since "AliceFluffy" and "FluffyAlice" are distinct guesses.
type PairwiseCombiner struct {
	id string
}

// NewPairwiseCombiner creates the pairwise combination expander
func NewPairwiseCombiner(id string, _ wordforge.Config) wordforge.Expander {
	return &PairwiseCombiner{id: id}
}

// ID returns the expander identifier
func (e *PairwiseCombiner) ID() string {
	return e.id
}

// Expand adds a+b and a+"_"+b for every ordered pair of distinct token
// positions to the working set.
func (e *PairwiseCombiner) Expand(ctx *wordforge.Context) {
	for i, a := range ctx.Tokens {
		for j, b := range ctx.Tokens {
			if i == j {
				continue
			}
			ctx.Set.Add(a + b)
			ctx.Set.Add(a + "_" + b)
		}
	}
}
