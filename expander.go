// Package wordforge holds the central wordlist generation logic used by wordforge.
package wordforge

import (
	"log"
	"time"
)

// Expander is a single candidate generation step. Expanders read the cleaned
// tokens from the context and add derived candidates to the working set.
type Expander interface {
	// ID returns the identifier of the expander
	ID() string
	// Expand adds candidates derived from the context tokens to the working set
	Expand(ctx *Context)
}

// Context holds the state shared by all expanders during a single
// generation run. The candidate set is owned by the generator and only
// lives for the duration of one Generate call.
type Context struct {
	Tokens []string
	Set    *CandidateSet
	Clock  func() time.Time
	Logger *log.Logger
}

// Now returns the current time according to the context clock,
// falling back to the system clock when none was injected.
func (ctx *Context) Now() time.Time {
	if ctx.Clock != nil {
		return ctx.Clock()
	}
	return time.Now()
}
