package core

// errors.go defines the error taxonomy shared by the engine and the web
// layer, plus the mapping to user-facing messages with support codes.
//
// The taxonomy is deliberately small. Operationally these are different
// animals: ErrSchema means "fix the sheet", ErrNotFound means "this person
// isn't in it", ErrUpstream means "try again later". They must never
// collapse into one another.

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest marks missing or malformed required query input.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound marks a miss: no matching record, or an absent attachment.
	ErrNotFound = errors.New("not found")

	// ErrSchema marks required logical columns that cannot be resolved
	// against the current header row. The sheet's structure has drifted
	// incompatibly; no amount of retrying helps.
	ErrSchema = errors.New("schema drift")

	// ErrUpstream marks an unreachable or failing collaborator: the table
	// source or the attachment store.
	ErrUpstream = errors.New("upstream unavailable")

	// ErrForbidden marks an access gate secret mismatch.
	ErrForbidden = errors.New("forbidden")
)

// badRequestf wraps ErrBadRequest with detail.
func badRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadRequest}, args...)...)
}

// badSchemaf wraps ErrSchema naming the unresolvable column.
func badSchemaf(column string) error {
	return fmt.Errorf("%w: required column %q not found in header row", ErrSchema, column)
}

// upstreamf wraps ErrUpstream with detail.
func upstreamf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUpstream}, args...)...)
}

// UserMessage is a user-friendly error with a support code. Users can quote
// the code to support staff for faster diagnosis.
type UserMessage struct {
	Code    string // Support reference, e.g. "LOOKUP002"
	Message string // What happened, in plain language
	Action  string // What the user can do about it
}

// MapError converts a technical error into a UserMessage.
// The full technical error is still logged server-side by the caller.
func MapError(err error) UserMessage {
	switch {
	case errors.Is(err, ErrBadRequest):
		return UserMessage{
			Code:    "LOOKUP001",
			Message: "The search request is incomplete.",
			Action:  "Provide a submission ID, or both a first and last name.",
		}
	case errors.Is(err, ErrNotFound):
		return UserMessage{
			Code:    "LOOKUP002",
			Message: "No matching registrant was found.",
			Action:  "Check the spelling, or search by submission ID instead.",
		}
	case errors.Is(err, ErrSchema):
		return UserMessage{
			Code:    "SHEET001",
			Message: "The registration sheet is missing expected columns.",
			Action:  "Contact the organizer; the sheet layout needs fixing.",
		}
	case errors.Is(err, ErrUpstream):
		return UserMessage{
			Code:    "SHEET002",
			Message: "A backing service did not respond.",
			Action:  "Please try again in a few moments.",
		}
	case errors.Is(err, ErrForbidden):
		return UserMessage{
			Code:    "AUTH001",
			Message: "Incorrect passcode.",
			Action:  "Check the passcode with your event coordinator.",
		}
	default:
		return UserMessage{
			Code:    "LOOKUP003",
			Message: "Something went wrong processing the request.",
			Action:  "Please try again, and quote this code if it persists.",
		}
	}
}
