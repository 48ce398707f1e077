package core

import "context"

// RawRow maps a deduplicated column label to its raw cell value.
// One RawRow per registrant, keyed by the labels produced by DedupeHeaders.
type RawRow map[string]string

// TableSnapshot is one read of the external sheet: the header row plus all
// data rows, in source order. A fresh snapshot is taken per query; nothing
// in this package holds one between queries.
type TableSnapshot struct {
	Headers []string
	Rows    []RawRow
}

// Source is the read-only tabular data provider. Implementations live in
// internal/source; the engine never writes through it.
type Source interface {
	Snapshot(ctx context.Context) (*TableSnapshot, error)
}

// MatchRule determines how a logical field name is matched against the
// column labels in a header snapshot.
type MatchRule int

const (
	// MatchExact requires case-insensitive equality with the column label.
	MatchExact MatchRule = iota

	// MatchCompound matches compound labels of the form "display|code" by
	// the segment preceding the delimiter.
	MatchCompound

	// MatchContains falls back to case-insensitive substring containment,
	// for forms that decorate labels with help text.
	MatchContains
)

// CompoundDelimiter separates the display segment from the machine field
// code in compound column labels.
const CompoundDelimiter = "|"

// FieldKind selects the normalization applied to a field's raw value.
type FieldKind int

const (
	KindText FieldKind = iota
	KindDate
	KindMultiSelect
)

// FieldSpec declares one logical field of a registration form and how its
// column is located in the live header row.
type FieldSpec struct {
	Name     string    // Logical field name, e.g. "Birthday"
	Rule     MatchRule // How the column label is matched
	Kind     FieldKind // Normalization applied to the raw value
	Optional bool      // Optional fields resolve to absent, not to a sentinel

	// ElaborationOf names the multi-select field whose "Others" placeholder
	// this free-text field elaborates. Set on the elaboration field only.
	ElaborationOf string
}

// ResolvedColumn is the outcome of resolving one logical field against a
// header snapshot. Label is always usable as a RawRow key: for a required
// field with no matching header it is the logical name itself, so downstream
// lookups consistently miss instead of panicking. Present records whether an
// actual header matched, keeping "not present" distinct from "present but
// empty".
type ResolvedColumn struct {
	Label   string
	Present bool
}

// ResolvedColumns maps logical field names to their resolved columns for one
// header snapshot.
type ResolvedColumns map[string]ResolvedColumn

// CanonicalRecord is the normalized, query-time view of one registrant.
// Values keep their original display casing; comparisons fold case at the
// matching layer. Immutable once built.
type CanonicalRecord struct {
	fields map[string]string
}

// Get returns the normalized value for a logical field name, or the empty
// string when the field is absent. Absence and emptiness are deliberately
// identical here; the distinction ends at normalization.
func (r CanonicalRecord) Get(name string) string {
	return r.fields[name]
}

// Projection is a named, ordered subset of logical fields a caller role is
// authorized to see.
type Projection struct {
	Role   string
	Fields []string
}

// AttachmentSpec declares one attachment category of a profile and the two
// resolution strategies for locating its object in the document store.
type AttachmentSpec struct {
	Category string // URL segment, e.g. "passport"
	Field    string // Logical field holding a direct stored reference, if any
	Folder   string // Folder scope for derived-filename search
	Pattern  string // Filename pattern, e.g. "{first}{last}_{MMDDYYYY}.jpg"
}

// FetchQuery is a typed derived-filename search against a foldered document
// store. It decouples query construction from the store transport.
type FetchQuery struct {
	Folder   string
	Filename string
}

// Reference is an opaque pointer to an attachment object. Exactly one of
// Direct or Query is populated.
type Reference struct {
	Direct string     // Stored URL or object key
	Query  FetchQuery // Derived-filename search, when no direct reference exists
}

// IsDirect reports whether the reference carries a stored URL or key rather
// than a derived-filename query.
func (ref Reference) IsDirect() bool {
	return ref.Direct != ""
}

// NameQuery is the input for a name-based lookup. First and Last are
// required; Middle constrains the match with tolerant similarity when set.
// Birthday, when set, must equal the record's normalized birthday.
// Tolerance overrides the profile's similarity threshold when positive.
type NameQuery struct {
	First     string
	Middle    string
	Last      string
	Birthday  string
	Tolerance int
}

// Suggestion is a lightweight candidate summary for typeahead.
type Suggestion struct {
	DisplayName    string   `json:"display_name"`
	RoleLabel      string   `json:"role_label"`
	SubmissionID   string   `json:"id"`
	MatchFragments []string `json:"match_fragments"`
}
