package core

import (
	"errors"
	"testing"
)

var errTest = errors.New("boom")

func TestProfile_Field(t *testing.T) {
	p := testProfile()

	spec, ok := p.Field("Birthday")
	if !ok {
		t.Fatal("Field(Birthday) not found")
	}
	if spec.Kind != KindDate {
		t.Errorf("Kind = %v, want KindDate", spec.Kind)
	}

	if _, ok := p.Field("No Such Field"); ok {
		t.Error("Field() found a field that does not exist")
	}
}

func TestProfile_Attachment(t *testing.T) {
	p := testProfile()

	spec, ok := p.Attachment("passport")
	if !ok {
		t.Fatal("Attachment(passport) not found")
	}
	if spec.Folder != "passports" {
		t.Errorf("Folder = %q, want %q", spec.Folder, "passports")
	}

	if _, ok := p.Attachment("visa"); ok {
		t.Error("Attachment() found a category that does not exist")
	}
}

func TestProfile_ElaborationFor(t *testing.T) {
	p := Profile{
		Fields: []FieldSpec{
			{Name: "Dietary Requirements", Kind: KindMultiSelect},
			{Name: "Dietary Requirements (Others)", Optional: true,
				ElaborationOf: "Dietary Requirements"},
		},
	}

	if got := p.elaborationFor("Dietary Requirements"); got != "Dietary Requirements (Others)" {
		t.Errorf("elaborationFor() = %q, want the paired free-text field", got)
	}
	if got := p.elaborationFor("Dietary Requirements (Others)"); got != "" {
		t.Errorf("elaborationFor() = %q, want empty for a non-multi-select field", got)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register(Profile{Name: "dup-check"})

	defer func() {
		if recover() == nil {
			t.Error("Register() did not panic on duplicate name")
		}
	}()
	Register(Profile{Name: "dup-check"})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"bad request", badRequestf("missing id"), "LOOKUP001"},
		{"not found", ErrNotFound, "LOOKUP002"},
		{"schema drift", badSchemaf("Birthday"), "SHEET001"},
		{"upstream", upstreamf("timeout"), "SHEET002"},
		{"forbidden", ErrForbidden, "AUTH001"},
		{"unclassified", errTest, "LOOKUP003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.wantCode)
			}
			if msg.Message == "" || msg.Action == "" {
				t.Errorf("MapError(%v) has empty message or action: %+v", tt.err, msg)
			}
		})
	}
}
