package core

// match.go locates at most one canonical record for a query.
//
// Identifier lookup is exact. Name lookup folds case and whitespace, strips
// honorific prefixes from the stored first name, and compares middle names
// with tolerant similarity, because middle names are frequently abbreviated,
// punctuated, or omitted. First match in source order wins; there is no
// ranking and no disambiguation of ties.

import (
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultFuzzyThreshold is the minimum partial-ratio score (exclusive, on a
// 0-100 scale) for two middle names to be considered the same.
const DefaultFuzzyThreshold = 80

// honorifics are prefixes stripped from the stored first-name token set, so
// a caller's plain "jane" matches a stored "Dr. Jane".
var honorifics = map[string]bool{
	"mr.":   true,
	"ms.":   true,
	"mrs.":  true,
	"dr.":   true,
	"prof.": true,
	"sir":   true,
	"madam": true,
}

// FindByID returns the first record whose submission ID equals id exactly.
// The upstream source is assumed to enforce identifier uniqueness.
func FindByID(records []CanonicalRecord, p Profile, id string) (CanonicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CanonicalRecord{}, badRequestf("missing submission id")
	}
	for _, rec := range records {
		if rec.Get(p.IDField) == id {
			return rec, nil
		}
	}
	return CanonicalRecord{}, ErrNotFound
}

// FindByName returns the first record matching the name query in source
// order. First and last names are required and compared case-insensitively
// after trimming; the stored first name loses any honorific prefix first.
// A middle name in the query must score above the tolerance threshold
// against the stored middle name. A birthday in the query must equal the
// record's normalized birthday.
func FindByName(records []CanonicalRecord, p Profile, q NameQuery) (CanonicalRecord, error) {
	first := foldName(q.First)
	last := foldName(q.Last)
	if first == "" || last == "" {
		return CanonicalRecord{}, badRequestf("missing first or last name")
	}

	middle := strings.TrimSpace(q.Middle)
	birthday := strings.TrimSpace(q.Birthday)
	threshold := q.Tolerance
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	for _, rec := range records {
		if stripHonorific(foldName(rec.Get(p.FirstNameField))) != first {
			continue
		}
		if foldName(rec.Get(p.LastNameField)) != last {
			continue
		}
		if middle != "" && !middleNamesMatch(rec.Get(p.MiddleNameField), middle, threshold) {
			continue
		}
		if birthday != "" && rec.Get(p.BirthdayField) != birthday {
			continue
		}
		return rec, nil
	}
	return CanonicalRecord{}, ErrNotFound
}

// foldName trims and lowercases a name for comparison.
func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripHonorific removes known honorific prefixes from the start of an
// already-folded name. "dr. jane" becomes "jane"; stacked honorifics are
// all removed.
func stripHonorific(name string) string {
	tokens := strings.Fields(name)
	for len(tokens) > 0 && honorifics[tokens[0]] {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

// middleNamesMatch scores two middle names with partial-ratio similarity
// after stripping punctuation and whitespace from both sides. The score
// must strictly exceed the threshold.
func middleNamesMatch(stored, queried string, threshold int) bool {
	a := squashName(stored)
	b := squashName(queried)
	if a == "" || b == "" {
		// Similarity against nothing is meaningless; an absent stored
		// middle name cannot satisfy a queried one.
		return false
	}
	return fuzzy.PartialRatio(a, b) > threshold
}

// squashName lowercases a name and drops punctuation and whitespace, so
// "Anne-Marie" and "annemarie" compare equal before scoring.
func squashName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
