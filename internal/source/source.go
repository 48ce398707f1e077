// Package source provides the read-only tabular data providers backing the
// lookup engine. Each implementation re-reads the sheet on every Snapshot
// call; none of them cache, so a snapshot always reflects current external
// state. Concurrent external edits mid-read can still yield a torn row set,
// which is an accepted limitation of treating a live sheet as a database.
package source

import (
	"fmt"
	"strings"

	"github.com/summitops/regdesk/internal/config"
	"github.com/summitops/regdesk/internal/core"
)

// New selects a source implementation from configuration.
func New(cfg config.SheetConfig) (core.Source, error) {
	switch strings.ToLower(cfg.Backend) {
	case "gsheet":
		return NewGoogleSheet(cfg.SpreadsheetID, cfg.ReadRange, cfg.CredentialsFile), nil
	case "xlsx":
		return NewWorkbook(cfg.Path), nil
	case "csv":
		return NewCSVFile(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown sheet backend %q", cfg.Backend)
	}
}

// buildSnapshot converts a raw cell matrix into a snapshot. The first row
// is the header row; duplicate labels are disambiguated positionally before
// the data rows are keyed, so no column shadows another. Short rows pad
// with empty cells, matching how sheet APIs trim trailing blanks.
func buildSnapshot(matrix [][]string) (*core.TableSnapshot, error) {
	if len(matrix) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	headers := core.DedupeHeaders(matrix[0])
	rows := make([]core.RawRow, 0, len(matrix)-1)
	for _, cells := range matrix[1:] {
		row := make(core.RawRow, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return &core.TableSnapshot{Headers: headers, Rows: rows}, nil
}
