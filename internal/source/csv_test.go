package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/summitops/regdesk/internal/config"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registrants.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestCSVFile_Snapshot(t *testing.T) {
	path := writeCSV(t,
		"Submission ID,First Name|f1,Last Name|f2,Birthday|f3\n"+
			"SUB-001,Jane,Doe,04/02/1990\n"+
			"SUB-002,John,Smith,12/25/1985\n")

	snap, err := NewCSVFile(path).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if len(snap.Headers) != 4 {
		t.Fatalf("got %d headers, want 4", len(snap.Headers))
	}
	if len(snap.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(snap.Rows))
	}
	if got := snap.Rows[0]["First Name|f1"]; got != "Jane" {
		t.Errorf("row 0 first name = %q, want %q", got, "Jane")
	}
	if got := snap.Rows[1]["Birthday|f3"]; got != "12/25/1985" {
		t.Errorf("row 1 birthday = %q, want %q", got, "12/25/1985")
	}
}

func TestCSVFile_Snapshot_RaggedRowsPadded(t *testing.T) {
	path := writeCSV(t,
		"Submission ID,First Name,Last Name\n"+
			"SUB-001,Jane\n")

	snap, err := NewCSVFile(path).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got := snap.Rows[0]["Last Name"]; got != "" {
		t.Errorf("missing trailing cell = %q, want empty", got)
	}
}

func TestCSVFile_Snapshot_DuplicateHeaders(t *testing.T) {
	path := writeCSV(t,
		"Email,Email\n"+
			"primary@example.com,backup@example.com\n")

	snap, err := NewCSVFile(path).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got := snap.Rows[0]["Email"]; got != "primary@example.com" {
		t.Errorf("Email = %q, want %q", got, "primary@example.com")
	}
	if got := snap.Rows[0]["Email_1"]; got != "backup@example.com" {
		t.Errorf("Email_1 = %q, want %q", got, "backup@example.com")
	}
}

func TestCSVFile_Snapshot_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	if _, err := NewCSVFile(path).Snapshot(context.Background()); err == nil {
		t.Fatal("Snapshot() expected error for an empty sheet")
	}
}

func TestCSVFile_Snapshot_MissingFile(t *testing.T) {
	s := NewCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := s.Snapshot(context.Background()); err == nil {
		t.Fatal("Snapshot() expected error for a missing file")
	}
}

func TestCSVFile_Snapshot_CanceledContext(t *testing.T) {
	path := writeCSV(t, "A\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewCSVFile(path).Snapshot(ctx); err == nil {
		t.Fatal("Snapshot() expected error for a canceled context")
	}
}

func TestNew_BackendSelection(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"csv", false},
		{"xlsx", false},
		{"gsheet", false},
		{"CSV", false},
		{"postgres", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			_, err := New(config.SheetConfig{
				Backend:       tt.backend,
				Path:          "/tmp/sheet.csv",
				SpreadsheetID: "sheet-id",
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			}
		})
	}
}
