package core

// normalize.go converts raw row values into canonical field values.
//
// These functions handle the messy reality of externally edited sheets:
//   - Multiple date formats (US, ISO, dotted, spelled-out months)
//   - Multi-select answers joined by commas, with an "Others" placeholder
//     pointing at a paired free-text elaboration
//   - Stray whitespace everywhere
//
// Normalization failures are recovered locally: a date that matches no
// accepted pattern becomes empty, never a raw string masquerading as valid,
// and a broken multi-value encoding degrades to its cleaned parts. Bad
// source data must not break the whole query.

import (
	"strconv"
	"strings"
	"time"
)

// CanonicalDateLayout is the single output representation for date fields.
const CanonicalDateLayout = "2006-01-02"

// AgeUnknown marks a birth date that is missing or failed to parse.
const AgeUnknown = "unknown"

// OthersPlaceholder is the literal token forms emit for the free-text slot
// of a multi-select answer.
const OthersPlaceholder = "Others"

// dateLayouts are the accepted input patterns, tried in order. The canonical
// layout comes first so re-normalizing canonical output is a no-op.
var dateLayouts = []string{
	CanonicalDateLayout,
	"1/2/2006",
	"01/02/2006",
	"1-2-2006",
	"01-02-2006",
	"1.2.2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// NormalizeDate parses a raw cell against the accepted layouts and returns
// the canonical year-month-day form. Anything unparseable normalizes to
// empty: a wrong-format string must never leak downstream as if valid.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(CanonicalDateLayout)
		}
	}
	return ""
}

// AgeAt derives whole years between a canonical birth date and now,
// decremented by one when the current month/day precedes the birth
// month/day. Missing or invalid birth dates yield AgeUnknown.
func AgeAt(birthday string, now time.Time) string {
	b, err := time.Parse(CanonicalDateLayout, birthday)
	if err != nil {
		return AgeUnknown
	}
	years := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		years--
	}
	if years < 0 {
		return AgeUnknown
	}
	return strconv.Itoa(years)
}

// ExpandMultiSelect rewrites a comma-joined multi-select value, substituting
// the paired elaboration in place of the "Others" placeholder. Order is
// preserved; an empty elaboration drops the slot rather than inserting a
// blank.
func ExpandMultiSelect(value, elaboration string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	elaboration = strings.TrimSpace(elaboration)

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.EqualFold(p, OthersPlaceholder) {
			if elaboration == "" {
				continue
			}
			p = elaboration
		}
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// Normalize converts one raw row into a canonical record using the profile's
// field specs and the columns resolved for this snapshot. Every field is
// trimmed; absent columns normalize to the empty string so downstream
// formatting stays uniform.
func Normalize(row RawRow, cols ResolvedColumns, p Profile) CanonicalRecord {
	fields := make(map[string]string, len(p.Fields))

	rawValue := func(name string) string {
		col, ok := cols[name]
		if !ok || col.Label == "" {
			return ""
		}
		return strings.TrimSpace(row[col.Label])
	}

	for _, spec := range p.Fields {
		v := rawValue(spec.Name)
		switch spec.Kind {
		case KindDate:
			v = NormalizeDate(v)
		case KindMultiSelect:
			v = ExpandMultiSelect(v, rawValue(p.elaborationFor(spec.Name)))
		}
		fields[spec.Name] = v
	}

	return CanonicalRecord{fields: fields}
}

// NormalizeAll converts every row of a snapshot, preserving source order.
func NormalizeAll(rows []RawRow, cols ResolvedColumns, p Profile) []CanonicalRecord {
	records := make([]CanonicalRecord, len(rows))
	for i, row := range rows {
		records[i] = Normalize(row, cols, p)
	}
	return records
}
