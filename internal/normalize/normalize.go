package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Handle canonicalizes a telegram handle: trims spaces and case-folds,
// so "@Ivan_Padel " and "@ivan_padel" resolve to the same member.
func Handle(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Name trims and title-cases a member name.
func Name(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}
