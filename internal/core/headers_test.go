package core

import (
	"reflect"
	"testing"
)

// ---- DedupeHeaders ----

func TestDedupeHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "no duplicates",
			headers: []string{"First Name", "Last Name", "Birthday"},
			want:    []string{"First Name", "Last Name", "Birthday"},
		},
		{
			name:    "single duplicate",
			headers: []string{"Email", "Email"},
			want:    []string{"Email", "Email_1"},
		},
		{
			name:    "triple duplicate",
			headers: []string{"Email", "Email", "Email"},
			want:    []string{"Email", "Email_1", "Email_2"},
		},
		{
			name:    "duplicates interleaved",
			headers: []string{"Email", "Phone", "Email", "Phone"},
			want:    []string{"Email", "Phone", "Email_1", "Phone_1"},
		},
		{
			name:    "empty input",
			headers: []string{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeHeaders(tt.headers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DedupeHeaders(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

// ---- Resolve ----

func TestResolve_Exact(t *testing.T) {
	headers := []string{"Submission ID", "First Name", "Last Name"}

	got := Resolve(headers, FieldSpec{Name: "Submission ID", Rule: MatchExact})
	if !got.Present || got.Label != "Submission ID" {
		t.Errorf("Resolve() = %+v, want present %q", got, "Submission ID")
	}
}

func TestResolve_ExactIsCaseInsensitive(t *testing.T) {
	headers := []string{"SUBMISSION id"}

	got := Resolve(headers, FieldSpec{Name: "Submission ID", Rule: MatchExact})
	if !got.Present || got.Label != "SUBMISSION id" {
		t.Errorf("Resolve() = %+v, want present %q", got, "SUBMISSION id")
	}
}

func TestResolve_CompoundLabel(t *testing.T) {
	headers := []string{"First Name|field_abc123", "Last Name|field_def456"}

	got := Resolve(headers, FieldSpec{Name: "First Name", Rule: MatchCompound})
	if !got.Present || got.Label != "First Name|field_abc123" {
		t.Errorf("Resolve() = %+v, want present %q", got, "First Name|field_abc123")
	}
}

func TestResolve_ExactWinsOverCompound(t *testing.T) {
	// A plain label takes precedence over a compound one even when the
	// compound label appears first.
	headers := []string{"Birthday|field_x", "Birthday"}

	got := Resolve(headers, FieldSpec{Name: "Birthday", Rule: MatchCompound})
	if got.Label != "Birthday" {
		t.Errorf("Resolve() label = %q, want %q", got.Label, "Birthday")
	}
}

func TestResolve_Contains(t *testing.T) {
	headers := []string{"Flight Number (if already booked)"}

	got := Resolve(headers, FieldSpec{Name: "Flight Number", Rule: MatchContains})
	if !got.Present || got.Label != "Flight Number (if already booked)" {
		t.Errorf("Resolve() = %+v, want present %q", got, "Flight Number (if already booked)")
	}
}

func TestResolve_RequiredMissIsSentinel(t *testing.T) {
	headers := []string{"First Name", "Last Name"}

	got := Resolve(headers, FieldSpec{Name: "Birthday", Rule: MatchCompound})
	if got.Present {
		t.Error("Resolve() Present = true, want false for a missing required column")
	}
	if got.Label != "Birthday" {
		t.Errorf("Resolve() label = %q, want sentinel %q", got.Label, "Birthday")
	}
}

func TestResolve_OptionalMissIsAbsent(t *testing.T) {
	headers := []string{"First Name"}

	got := Resolve(headers, FieldSpec{Name: "Respondent ID", Rule: MatchExact, Optional: true})
	if got.Present || got.Label != "" {
		t.Errorf("Resolve() = %+v, want zero value for a missing optional column", got)
	}
}

func TestResolveAll(t *testing.T) {
	p := Profile{
		Name: "test",
		Fields: []FieldSpec{
			{Name: "Submission ID", Rule: MatchExact},
			{Name: "First Name", Rule: MatchCompound},
			{Name: "Comments", Rule: MatchContains, Optional: true},
		},
	}
	headers := []string{"Submission ID", "First Name|field_1"}

	cols := ResolveAll(headers, p)
	if len(cols) != 3 {
		t.Fatalf("ResolveAll() returned %d columns, want 3", len(cols))
	}
	if !cols["Submission ID"].Present {
		t.Error("Submission ID not resolved")
	}
	if cols["First Name"].Label != "First Name|field_1" {
		t.Errorf("First Name label = %q, want %q", cols["First Name"].Label, "First Name|field_1")
	}
	if cols["Comments"].Present {
		t.Error("Comments resolved, want absent")
	}
}
