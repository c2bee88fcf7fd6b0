// Package harvest contains the harvesting pipeline: brand resolution, the
// sequential paginating collector and the concurrent detail enricher.
package harvest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// BrandExtractor resolves a brand for an item. Pure and total: it never
// fails, an item with no resolvable brand yields "".
type BrandExtractor struct {
	// Alias and Name are the two keys a brand attribute may carry
	// ("brand" and "Бренд" on the live API).
	Alias string
	Name  string
	// MinTokenLength is the strict lower bound on heuristic token length.
	MinTokenLength int
}

// Extract returns the item's brand. The attribute list wins when it holds a
// brand entry (first match, list order preserved); otherwise the name is
// scanned for the first run of upper-case tokens.
func (b BrandExtractor) Extract(item model.RawItem) string {
	for _, attr := range item.Attributes {
		if attr.Alias == b.Alias || attr.Name == b.Name {
			return attr.Value
		}
	}
	return b.scanName(item.Name)
}

// scanName picks the first run of fully upper-case tokens longer than
// MinTokenLength. The run ends at the first non-qualifying token and
// scanning never resumes, so "COCA COLA Light ZERO" yields "COCA COLA".
func (b BrandExtractor) scanName(name string) string {
	var run []string
	for _, tok := range strings.Fields(name) {
		if isUpperToken(tok) && utf8.RuneCountInString(tok) > b.MinTokenLength {
			run = append(run, tok)
			continue
		}
		if len(run) > 0 {
			break
		}
	}
	return strings.Join(run, " ")
}

// isUpperToken reports whether the token counts as upper-case: at least one
// cased rune and no lower-case rune. Digits and punctuation don't
// disqualify a token, matching how the source data mixes "7UP" and "Д.П.".
func isUpperToken(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
