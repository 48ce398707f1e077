package core

// project.go filters a canonical record down to the fields a caller role is
// authorized to see.
//
// The caller-supplied role is untrusted input, not a security boundary by
// itself; real access control happens at the passcode gate in the web layer.
// Unknown roles therefore fall back to the unrestricted view instead of
// erroring.

import (
	"bytes"
	"encoding/json"
)

// UnrestrictedRole selects the full projection. The empty role does too.
const UnrestrictedRole = "unrestricted"

// Derived field names available to projections alongside the profile's
// declared fields.
const (
	FieldFullName = "Full Name"
	FieldAge      = "Age"
)

// ProjectedField is one visible field of a projected record.
type ProjectedField struct {
	Name  string
	Value string
}

// ProjectedRecord is the role-filtered view of one registrant. Field order
// is stable and defined by the projection's declared order, not the source
// row's column order.
type ProjectedRecord struct {
	Role   string
	Fields []ProjectedField
}

// MarshalJSON emits the fields as a JSON object in projection order.
func (pr ProjectedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range pr.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Project returns the subset of a record's fields visible under the given
// role, in the projection's declared order. Unknown or absent roles yield
// the unrestricted projection.
func Project(rec CanonicalRecord, p Profile, role string) ProjectedRecord {
	names := unrestrictedFields(p)
	matched := UnrestrictedRole
	for _, proj := range p.Projections {
		if proj.Role == role {
			names = proj.Fields
			matched = proj.Role
			break
		}
	}

	fields := make([]ProjectedField, 0, len(names))
	for _, name := range names {
		fields = append(fields, ProjectedField{Name: name, Value: fieldValue(rec, p, name)})
	}
	return ProjectedRecord{Role: matched, Fields: fields}
}

// unrestrictedFields is the full view: every declared field in declaration
// order, followed by the derived fields.
func unrestrictedFields(p Profile) []string {
	names := make([]string, 0, len(p.Fields)+2)
	for _, spec := range p.Fields {
		names = append(names, spec.Name)
	}
	return append(names, FieldFullName, FieldAge)
}

// fieldValue resolves declared and derived field values uniformly.
func fieldValue(rec CanonicalRecord, p Profile, name string) string {
	switch name {
	case FieldFullName:
		return joinNonEmpty(
			rec.Get(p.FirstNameField),
			rec.Get(p.MiddleNameField),
			rec.Get(p.LastNameField),
		)
	case FieldAge:
		return AgeAt(rec.Get(p.BirthdayField), nowFunc())
	default:
		return rec.Get(name)
	}
}

func joinNonEmpty(parts ...string) string {
	var buf bytes.Buffer
	for _, p := range parts {
		if p == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(p)
	}
	return buf.String()
}
