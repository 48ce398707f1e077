package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/summitops/regdesk/internal/core"
)

// CSVFile reads snapshots from a comma-separated export on disk. Useful for
// local development and for deployments that sync the sheet to a file.
type CSVFile struct {
	path string
}

// NewCSVFile creates a CSV-backed source for the given path.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Snapshot re-reads the whole file. Context cancellation is checked before
// the read; the read itself is local and fast.
func (s *CSVFile) Snapshot(ctx context.Context) (*core.TableSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are padded by buildSnapshot
	matrix, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return buildSnapshot(matrix)
}
