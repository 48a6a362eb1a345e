package expand

import "github.com/wordforge/wordforge"

// commonSuffixes is the fixed ordered catalog appended to candidates.
// Defined once, never mutated.
var commonSuffixes = []string{"123", "!", "@", "2020", "2021", "2022"}

// CommonSuffixes appends the suffix catalog to a snapshot of the candidates
// generated so far.
type CommonSuffixes struct {
	id      string
	catalog []string
}

// NewCommonSuffixes creates the common suffix expander
func NewCommonSuffixes(id string, _ wordforge.Config) wordforge.Expander {
	return &CommonSuffixes{id: id, catalog: commonSuffixes}
}

// ID returns the expander identifier
func (e *CommonSuffixes) ID() string {
	return e.id
}

// Expand iterates a snapshot of the set taken before this step and adds
// base+suffix for every base and catalog suffix. Iterating the snapshot
// rather than the live set keeps candidates added during the pass from
// being suffixed again.
func (e *CommonSuffixes) Expand(ctx *wordforge.Context) {
	snapshot := ctx.Set.Snapshot()
	for _, base := range snapshot {
		for _, suffix := range e.catalog {
			ctx.Set.Add(base + suffix)
		}
	}
}
