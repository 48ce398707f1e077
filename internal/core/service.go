package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// nowFunc is the clock for age derivation. Overridable in tests.
var nowFunc = time.Now

// Service provides the lookup operations over a table source. It holds no
// snapshot between queries: every call re-reads the full header row and row
// set, so no two queries share mutable state and concurrent lookups need no
// coordination beyond what the source provides.
type Service struct {
	source         Source
	profile        Profile
	fuzzyThreshold int
	suggestMinLen  int
}

// NewService creates a Service for the named profile.
func NewService(source Source, profileName string, fuzzyThreshold, suggestMinLen int) (*Service, error) {
	p, ok := GetProfile(profileName)
	if !ok {
		return nil, badRequestf("unknown profile %q", profileName)
	}
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	if suggestMinLen <= 0 {
		suggestMinLen = DefaultSuggestMinLength
	}
	return &Service{
		source:         source,
		profile:        p,
		fuzzyThreshold: fuzzyThreshold,
		suggestMinLen:  suggestMinLen,
	}, nil
}

// Profile returns the deployment profile this service resolves against.
func (s *Service) Profile() Profile {
	return s.profile
}

// snapshot takes a fresh read of the source and resolves the profile's
// fields against its header row. Required identity columns that cannot be
// resolved mean the sheet has drifted incompatibly.
func (s *Service) snapshot(ctx context.Context) ([]CanonicalRecord, error) {
	queryID := uuid.NewString()
	start := nowFunc()

	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, upstreamf("table source: %v", err)
	}

	headers := DedupeHeaders(snap.Headers)
	cols := ResolveAll(headers, s.profile)

	for _, name := range []string{s.profile.FirstNameField, s.profile.LastNameField, s.profile.BirthdayField} {
		if !cols[name].Present {
			return nil, badSchemaf(name)
		}
	}

	records := NormalizeAll(snap.Rows, cols, s.profile)

	slog.Debug("snapshot resolved",
		"query_id", queryID,
		"profile", s.profile.Name,
		"rows", len(records),
		"columns", len(headers),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

// LookupByID resolves a record by submission ID and projects it for role.
func (s *Service) LookupByID(ctx context.Context, id, role string) (ProjectedRecord, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return ProjectedRecord{}, err
	}
	rec, err := FindByID(records, s.profile, id)
	if err != nil {
		return ProjectedRecord{}, err
	}
	return Project(rec, s.profile, role), nil
}

// LookupByName resolves a record by name query and projects it for role.
// The service threshold applies when the query carries no tolerance.
func (s *Service) LookupByName(ctx context.Context, q NameQuery, role string) (ProjectedRecord, error) {
	if q.Tolerance <= 0 {
		q.Tolerance = s.fuzzyThreshold
	}
	records, err := s.snapshot(ctx)
	if err != nil {
		return ProjectedRecord{}, err
	}
	rec, err := FindByName(records, s.profile, q)
	if err != nil {
		return ProjectedRecord{}, err
	}
	return Project(rec, s.profile, role), nil
}

// Suggest returns typeahead candidates for a partial query. It always
// succeeds against a healthy source, possibly with empty output.
// Sub-minimum queries never reach the source: the guard runs before the
// snapshot, so typing the first character does not re-read the whole sheet.
func (s *Service) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	if SuggestQueryTooShort(query, s.suggestMinLen) {
		return []Suggestion{}, nil
	}
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(records, s.profile, query, s.suggestMinLen), nil
}

// Attachment locates the record for a submission ID and resolves a
// reference for the given attachment category.
func (s *Service) Attachment(ctx context.Context, id, category string) (Reference, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return Reference{}, err
	}
	rec, err := FindByID(records, s.profile, id)
	if err != nil {
		return Reference{}, err
	}
	return ResolveAttachment(rec, s.profile, category)
}
