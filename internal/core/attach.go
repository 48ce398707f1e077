package core

// attach.go decides attachment validity and produces opaque references for
// the transport layer to dereference. No store access happens here.
//
// Two resolution strategies exist across deployments: some forms store a
// direct URL per attachment, others expect a derived-filename search against
// a foldered document store. A profile's AttachmentSpec declares which (or
// both, with the direct reference preferred).

import (
	"strings"
	"time"
)

// Pattern tokens understood by derived-filename expansion.
const (
	tokenFirst    = "{first}"
	tokenLast     = "{last}"
	tokenBirthday = "{MMDDYYYY}"
)

// ResolveAttachment produces a reference for the given record and category.
// A reference is valid only when the record's submission ID is non-empty
// and either the direct attachment field carries a value or the derived
// filename pattern expands completely; otherwise ErrNotFound.
func ResolveAttachment(rec CanonicalRecord, p Profile, category string) (Reference, error) {
	spec, ok := p.Attachment(category)
	if !ok {
		return Reference{}, badRequestf("unknown attachment category %q", category)
	}

	// An attachment without a stable identifier cannot be correlated with
	// its row; treat it as absent rather than guessing.
	if rec.Get(p.IDField) == "" {
		return Reference{}, ErrNotFound
	}

	if spec.Field != "" {
		if direct := rec.Get(spec.Field); direct != "" {
			return Reference{Direct: direct}, nil
		}
	}

	if spec.Pattern != "" {
		filename, ok := expandPattern(rec, p, spec.Pattern)
		if ok {
			return Reference{Query: FetchQuery{Folder: spec.Folder, Filename: filename}}, nil
		}
	}

	return Reference{}, ErrNotFound
}

// expandPattern substitutes identity fields into a filename pattern such as
// "{first}{last}_{MMDDYYYY}.jpg". Name tokens are lowercased with spaces
// removed; the birthday token uses the normalized birth date. Expansion
// fails when any referenced field is empty.
func expandPattern(rec CanonicalRecord, p Profile, pattern string) (string, bool) {
	out := pattern

	replace := func(token, value string) bool {
		if !strings.Contains(out, token) {
			return true
		}
		if value == "" {
			return false
		}
		out = strings.ReplaceAll(out, token, value)
		return true
	}

	if !replace(tokenFirst, squashName(rec.Get(p.FirstNameField))) {
		return "", false
	}
	if !replace(tokenLast, squashName(rec.Get(p.LastNameField))) {
		return "", false
	}

	if strings.Contains(out, tokenBirthday) {
		b, err := time.Parse(CanonicalDateLayout, rec.Get(p.BirthdayField))
		if err != nil {
			return "", false
		}
		out = strings.ReplaceAll(out, tokenBirthday, b.Format("01022006"))
	}

	return out, true
}
