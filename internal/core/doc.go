// Package core provides the record resolution and projection engine.
//
// This package is the heart of the lookup service, containing all domain
// logic independent of any transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Profiles: Registered via the registry, each deployment profile declares
//     the logical fields of the registration form, how their column labels are
//     matched against the live header row, the role projections, and the
//     attachment categories.
//   - Header resolution: Maps logical field names to the actual, possibly
//     decorated or duplicated, column labels of the current sheet snapshot.
//   - Normalization: Converts a raw row into a canonical record with cleaned
//     names, canonical dates, and expanded multi-select values.
//   - Matching: Locates at most one record by submission ID or by name, with
//     honorific stripping and tolerant middle-name comparison.
//   - Projection: Filters a canonical record down to the fields a caller role
//     is authorized to see, in the projection's declared order.
//
// # Lifecycle
//
// Nothing is cached. Every lookup takes a fresh snapshot from the table
// source, resolves the header row from scratch, and recomputes canonical
// records. The external sheet is the single source of truth and is never
// written by this engine.
//
// # Error Handling
//
// Malformed source data (bad dates, bad multi-value encodings) is recovered
// locally as empty or unknown values and never surfaces as an error. The
// sentinel errors in errors.go separate caller mistakes (ErrBadRequest),
// genuine misses (ErrNotFound), sheet structure drift (ErrSchema), and
// unreachable collaborators (ErrUpstream), so the transport can map each to
// a distinct status. [MapError] attaches support codes in the same spirit:
//
//   - LOOKUP001-LOOKUP003: Query input and match outcomes
//   - SHEET001-SHEET002: Header drift and source failures
//   - AUTH001: Access gate mismatches
package core
