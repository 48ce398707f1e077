package profiles

import "github.com/summitops/regdesk/internal/core"

// Tally is the registration form profile for Tally-exported sheets.
//
// Tally encodes most column labels as compound "display|field-code" pairs
// and appends free-text elaboration columns after multi-select questions.
// Long-winded question labels ("Medical Conditions we should be aware of")
// are matched by containment so minor rewording survives.
var Tally = core.Profile{
	Name: "tally",
	Fields: []core.FieldSpec{
		{Name: "Submission ID", Rule: core.MatchExact},
		{Name: "Respondent ID", Rule: core.MatchExact, Optional: true},
		{Name: "First Name", Rule: core.MatchCompound},
		{Name: "Second Name", Rule: core.MatchCompound, Optional: true},
		{Name: "Last Name", Rule: core.MatchCompound},
		{Name: "Birthday", Rule: core.MatchCompound, Kind: core.KindDate},
		{Name: "Role", Rule: core.MatchCompound, Optional: true},
		{Name: "Departure Date", Rule: core.MatchCompound, Kind: core.KindDate},
		{Name: "Return Date", Rule: core.MatchCompound, Kind: core.KindDate},
		{Name: "Flight Number", Rule: core.MatchContains, Optional: true},
		{Name: "Dietary Requirements", Rule: core.MatchCompound, Kind: core.KindMultiSelect},
		{Name: "Dietary Requirements (Others)", Rule: core.MatchCompound, Optional: true,
			ElaborationOf: "Dietary Requirements"},
		{Name: "Medical Conditions", Rule: core.MatchContains, Optional: true},
		{Name: "Accessibility needs", Rule: core.MatchContains, Optional: true},
		{Name: "Passport", Rule: core.MatchExact, Optional: true},
		{Name: "Flight Details", Rule: core.MatchExact, Optional: true},
		{Name: "Proof of Payment", Rule: core.MatchExact, Optional: true},
	},

	IDField:         "Submission ID",
	FirstNameField:  "First Name",
	MiddleNameField: "Second Name",
	LastNameField:   "Last Name",
	BirthdayField:   "Birthday",
	RoleLabelField:  "Role",

	Projections: []core.Projection{
		{
			// The lodging desk assigns rooms: identity, stay window, and
			// the needs that affect room placement. Never transit fields.
			Role: "lodging-desk",
			Fields: []string{
				core.FieldFullName,
				"Birthday",
				core.FieldAge,
				"Departure Date",
				"Return Date",
				"Dietary Requirements",
				"Medical Conditions",
				"Accessibility needs",
			},
		},
		{
			// The transit desk arranges pickups: identity and travel only.
			Role: "transit-desk",
			Fields: []string{
				core.FieldFullName,
				"Departure Date",
				"Return Date",
				"Flight Number",
				"Accessibility needs",
			},
		},
	},

	Attachments: []core.AttachmentSpec{
		{
			Category: "passport",
			Field:    "Passport",
			Folder:   "passports",
			Pattern:  "{first}{last}_{MMDDYYYY}.jpg",
		},
		{
			Category: "flight-itinerary",
			Field:    "Flight Details",
			Folder:   "itineraries",
			Pattern:  "{first}{last}_{MMDDYYYY}.pdf",
		},
		{
			Category: "proof-of-payment",
			Field:    "Proof of Payment",
			Folder:   "payments",
			Pattern:  "{first}{last}_{MMDDYYYY}.pdf",
		},
	},
}
