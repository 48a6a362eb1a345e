package expand

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wordforge/wordforge"
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

func lowercase(s string) string {
	return lowerCaser.String(s)
}

// CaseVariants expands every token into its case-normalized forms
type CaseVariants struct {
	id string
}

// NewCaseVariants creates the case variant expander
func NewCaseVariants(id string, _ wordforge.Config) wordforge.Expander {
	return &CaseVariants{id: id}
}

// ID returns the expander identifier
func (e *CaseVariants) ID() string {
	return e.id
}

// Expand adds the original, lowercase, uppercase and capitalized form of
// every token to the working set.
func (e *CaseVariants) Expand(ctx *wordforge.Context) {
	for _, token := range ctx.Tokens {
		ctx.Set.AddAll(caseVariants(token))
	}
}

func caseVariants(token string) []string {
	return []string{
		token,
		lowercase(token),
		upperCaser.String(token),
		capitalize(token),
	}
}

// capitalize uppercases the first character and lowercases the remainder
func capitalize(token string) string {
	runes := []rune(lowercase(token))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
