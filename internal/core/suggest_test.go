package core

import (
	"reflect"
	"testing"
)

func TestSuggest(t *testing.T) {
	p := testProfile()
	records := testRecords()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "first name substring",
			query:   "jan",
			wantIDs: []string{"SUB-001", "SUB-003"},
		},
		{
			name:    "last name substring",
			query:   "smi",
			wantIDs: []string{"SUB-002", "SUB-003"},
		},
		{
			name:    "middle name substring",
			query:   "marie",
			wantIDs: []string{"SUB-001"},
		},
		{
			name:    "case insensitive",
			query:   "JANE",
			wantIDs: []string{"SUB-001", "SUB-003"},
		},
		{
			name:    "spans name boundary",
			query:   "jane smith",
			wantIDs: []string{"SUB-003"},
		},
		{
			name:    "no match",
			query:   "zz",
			wantIDs: []string{},
		},
		{
			name:    "below minimum length",
			query:   "j",
			wantIDs: []string{},
		},
		{
			// One rune, two bytes: length is counted in runes.
			name:    "single multi-byte rune below minimum",
			query:   "é",
			wantIDs: []string{},
		},
		{
			name:    "whitespace only",
			query:   "   ",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(records, p, tt.query, 2)
			if got == nil {
				t.Fatal("Suggest() = nil, want non-nil slice")
			}
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.SubmissionID)
			}
			want := tt.wantIDs
			if !reflect.DeepEqual(ids, want) {
				t.Errorf("Suggest(%q) ids = %v, want %v", tt.query, ids, want)
			}
		})
	}
}

func TestSuggestQueryTooShort(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		minLength int
		want      bool
	}{
		{"at minimum", "ja", 2, false},
		{"below minimum", "j", 2, true},
		{"whitespace does not count", "  j  ", 2, true},
		{"runes not bytes", "é", 2, true},
		{"two multi-byte runes", "éa", 2, false},
		{"zero minimum uses default", "j", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestQueryTooShort(tt.query, tt.minLength)
			if got != tt.want {
				t.Errorf("SuggestQueryTooShort(%q, %d) = %v, want %v",
					tt.query, tt.minLength, got, tt.want)
			}
		})
	}
}

func TestSuggest_CandidateShape(t *testing.T) {
	p := testProfile()
	got := Suggest(testRecords(), p, "anne", 2)

	if len(got) != 1 {
		t.Fatalf("Suggest() returned %d candidates, want 1", len(got))
	}
	s := got[0]
	if s.DisplayName != "Jane Anne-Marie Doe" {
		t.Errorf("DisplayName = %q, want %q", s.DisplayName, "Jane Anne-Marie Doe")
	}
	if s.RoleLabel != "Speaker" {
		t.Errorf("RoleLabel = %q, want %q", s.RoleLabel, "Speaker")
	}
	if s.SubmissionID != "SUB-001" {
		t.Errorf("SubmissionID = %q, want %q", s.SubmissionID, "SUB-001")
	}
	if !reflect.DeepEqual(s.MatchFragments, []string{"middle"}) {
		t.Errorf("MatchFragments = %v, want [middle]", s.MatchFragments)
	}
}

func TestSuggest_FullNameFragment(t *testing.T) {
	p := testProfile()
	// "jane smith" only matches across the first/last boundary.
	got := Suggest(testRecords(), p, "jane smith", 2)

	if len(got) != 1 {
		t.Fatalf("Suggest() returned %d candidates, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].MatchFragments, []string{"full"}) {
		t.Errorf("MatchFragments = %v, want [full]", got[0].MatchFragments)
	}
}
