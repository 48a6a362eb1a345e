// Package expand implements the candidate expansion steps run by the
// wordforge generator. Each expander is identified by an ID and can be
// selected or deselected through filters, mirroring how generation is
// configured from the command line.
package expand

import (
	"sort"
	"strconv"

	"github.com/wordforge/wordforge"
)

// Definition contains the description of an expander and a mechanism to
// create it.
type Definition struct {
	ID          string
	Description string
	Create      func(id string, conf wordforge.Config) wordforge.Expander
}

// List contains a mapping of expander ID to expander definition
type List map[string]Definition

// Expanders instantiates all expanders in the list, ready to be loaded
// into a generator.
func (el List) Expanders(conf wordforge.Config) []wordforge.Expander {
	expanders := make([]wordforge.Expander, 0, len(el))
	for id, def := range el {
		expanders = append(expanders, def.Create(id, conf))
	}
	return expanders
}

// IDs returns the ids of the expanders in ascending order, which is also
// their execution order.
func (el List) IDs() []string {
	ids := make([]string, 0, len(el))
	for id := range el {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Filter can be used to include or exclude an expander depending on the return
// value of the function
type Filter func(string) bool

// NewFilter is a closure that will include/exclude the expander ID based on
// the supplied boolean
func NewFilter(action bool, ids ...string) Filter {
	selected := make(map[string]bool)
	for _, id := range ids {
		selected[id] = true
	}
	return func(id string) bool {
		if _, found := selected[id]; found {
			return action
		}
		return !action
	}
}

// Generate the list of expanders to use
func Generate(filters ...Filter) List {
	expanders := []Definition{
		// per-token expansion
		{"W101", "Case variants (original, lower, upper, capitalized)", NewCaseVariants},
		{"W102", "Leetspeak substitution variants", NewLeetVariants},
		{"W103", "Recent calendar year suffixes", NewYearSuffixes},

		// token combination
		{"W201", "Pairwise token combinations", NewPairwiseCombiner},

		// whole-set expansion
		{"W301", "Common numeric and symbol suffixes", NewCommonSuffixes},
	}

	list := make(List, len(expanders))
	for _, def := range expanders {
		list[def.ID] = def
	}
	for id := range list {
		for _, filter := range filters {
			if filter(id) {
				delete(list, id)
			}
		}
	}
	return list
}

// intSetting reads an integer option from the expander's config section,
// tolerating the numeric and string forms a JSON config produces.
func intSetting(conf wordforge.Config, id, key string, fallback int) int {
	section, err := conf.Get(id)
	if err != nil {
		return fallback
	}
	settings, ok := section.(map[string]interface{})
	if !ok {
		return fallback
	}
	value, found := settings[key]
	if !found {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
