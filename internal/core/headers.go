package core

// headers.go resolves logical field names against a live header row.
//
// Form revisions rename, decorate, and reorder columns, and exported sheets
// sometimes carry the same label twice. Resolution therefore runs per query
// against the snapshot's actual headers, and never errors: a required field
// with no matching header resolves to the logical name itself as a sentinel
// key, so raw-row lookups consistently miss rather than throwing.

import (
	"fmt"
	"strings"
)

// DedupeHeaders disambiguates repeated column labels with a positional
// suffix. The first occurrence keeps its label; later duplicates become
// "Label_1", "Label_2", and so on, so no column silently shadows another.
// Row mappings must be built against the deduplicated labels.
func DedupeHeaders(headers []string) []string {
	seen := make(map[string]int, len(headers))
	out := make([]string, len(headers))
	for i, h := range headers {
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			out[i] = fmt.Sprintf("%s_%d", h, n+1)
		} else {
			seen[h] = 0
			out[i] = h
		}
	}
	return out
}

// Resolve maps a logical field name to the column label present in the given
// header snapshot.
//
// Matching precedence:
//  1. Exact case-insensitive equality.
//  2. For MatchCompound, the label segment before the compound delimiter.
//  3. For MatchContains, case-insensitive substring containment.
//
// A required field with no match resolves to the logical name itself with
// Present=false; an optional field resolves to absent. Resolution never
// returns an error.
func Resolve(headers []string, spec FieldSpec) ResolvedColumn {
	want := strings.ToLower(strings.TrimSpace(spec.Name))

	for _, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return ResolvedColumn{Label: h, Present: true}
		}
	}

	switch spec.Rule {
	case MatchCompound:
		for _, h := range headers {
			display, _, found := strings.Cut(h, CompoundDelimiter)
			if found && strings.ToLower(strings.TrimSpace(display)) == want {
				return ResolvedColumn{Label: h, Present: true}
			}
		}
	case MatchContains:
		for _, h := range headers {
			if strings.Contains(strings.ToLower(h), want) {
				return ResolvedColumn{Label: h, Present: true}
			}
		}
	}

	if spec.Optional {
		return ResolvedColumn{}
	}
	// Sentinel: downstream raw-row lookups miss consistently.
	return ResolvedColumn{Label: spec.Name, Present: false}
}

// ResolveAll resolves every field of a profile against a header snapshot.
func ResolveAll(headers []string, p Profile) ResolvedColumns {
	cols := make(ResolvedColumns, len(p.Fields))
	for _, spec := range p.Fields {
		cols[spec.Name] = Resolve(headers, spec)
	}
	return cols
}
