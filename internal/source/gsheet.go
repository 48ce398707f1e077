package source

import (
	"context"
	"fmt"

	"github.com/summitops/regdesk/internal/core"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheet reads snapshots from a live Google Sheets document using a
// service account with read-only scope. This is the production backing
// store: organizers edit the sheet directly and every query sees their
// latest state.
type GoogleSheet struct {
	spreadsheetID   string
	readRange       string
	credentialsFile string
}

// NewGoogleSheet creates a Sheets-backed source.
func NewGoogleSheet(spreadsheetID, readRange, credentialsFile string) *GoogleSheet {
	return &GoogleSheet{
		spreadsheetID:   spreadsheetID,
		readRange:       readRange,
		credentialsFile: credentialsFile,
	}
}

// Snapshot fetches the configured range. The Sheets client is rebuilt per
// call so credential rotation on disk takes effect without a restart; the
// underlying HTTP transport still reuses connections.
func (s *GoogleSheet) Snapshot(ctx context.Context) (*core.TableSnapshot, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %q: %w", s.readRange, err)
	}

	matrix := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		matrix = append(matrix, cells)
	}

	return buildSnapshot(matrix)
}
