package core

// suggest.go produces typeahead candidates by scanning the same normalized
// records the matcher uses. Matches are not ranked; output follows source
// row order, which is adequate for typeahead but not full search.

import (
	"strings"
	"unicode/utf8"
)

// DefaultSuggestMinLength is the minimum query length, in runes, before the
// index scans the dataset. Shorter queries return an empty slice, not an
// error, so every keystroke does not trigger a full scan.
const DefaultSuggestMinLength = 2

// SuggestQueryTooShort reports whether a query is below the minimum length
// and should be answered with an empty candidate list without touching the
// dataset at all.
func SuggestQueryTooShort(query string, minLength int) bool {
	if minLength <= 0 {
		minLength = DefaultSuggestMinLength
	}
	return utf8.RuneCountInString(strings.TrimSpace(query)) < minLength
}

// Suggest returns lightweight candidate summaries for the records whose
// first, middle, or last name (or the concatenation of all three) contains
// the query substring, case-insensitively.
func Suggest(records []CanonicalRecord, p Profile, query string, minLength int) []Suggestion {
	if SuggestQueryTooShort(query, minLength) {
		return []Suggestion{}
	}
	q := strings.ToLower(strings.TrimSpace(query))

	out := []Suggestion{}
	for _, rec := range records {
		first := rec.Get(p.FirstNameField)
		middle := rec.Get(p.MiddleNameField)
		last := rec.Get(p.LastNameField)

		var fragments []string
		if strings.Contains(strings.ToLower(first), q) {
			fragments = append(fragments, "first")
		}
		if strings.Contains(strings.ToLower(middle), q) {
			fragments = append(fragments, "middle")
		}
		if strings.Contains(strings.ToLower(last), q) {
			fragments = append(fragments, "last")
		}
		full := joinNonEmpty(first, middle, last)
		if len(fragments) == 0 && strings.Contains(strings.ToLower(full), q) {
			fragments = append(fragments, "full")
		}
		if len(fragments) == 0 {
			continue
		}

		out = append(out, Suggestion{
			DisplayName:    full,
			RoleLabel:      rec.Get(p.RoleLabelField),
			SubmissionID:   rec.Get(p.IDField),
			MatchFragments: fragments,
		})
	}
	return out
}
