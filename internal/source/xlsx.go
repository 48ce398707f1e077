package source

import (
	"context"
	"fmt"

	"github.com/summitops/regdesk/internal/core"
	"github.com/xuri/excelize/v2"
)

// Workbook reads snapshots from the first sheet of an Excel workbook.
// Registration forms are often exported as .xlsx and dropped onto a shared
// volume; this source re-opens the file per query so edits show up without
// a restart.
type Workbook struct {
	path string
}

// NewWorkbook creates a workbook-backed source for the given path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

// Snapshot opens the workbook and extracts all rows of its first sheet.
func (s *Workbook) Snapshot(ctx context.Context) (*core.TableSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%s: no worksheet found", s.path)
	}

	matrix, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return buildSnapshot(matrix)
}
