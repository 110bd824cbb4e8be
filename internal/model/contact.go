package model

import "time"

// MatchDecision classifies a license-directory match.
type MatchDecision string

const (
	MatchExact MatchDecision = "exact"
	MatchFuzzy MatchDecision = "fuzzy"
	MatchNone  MatchDecision = "none"
)

// MatchResult relates one applicant summary to at most one license record.
// License is nil when Decision is MatchNone; when set it is the global
// maximum over all candidates, with ties broken by input order.
type MatchResult struct {
	Decision MatchDecision  `json:"decision"`
	Score    float64        `json:"score"`
	License  *LicenseRecord `json:"license,omitempty"`
}

// ContactSource identifies which precedence tier supplied a merged field.
type ContactSource string

const (
	SourceLicensed  ContactSource = "licensed_data"
	SourceExisting  ContactSource = "existing_database"
	SourceAddress   ContactSource = "extracted_from_address"
	SourceGenerated ContactSource = "generated"
	SourceNone      ContactSource = "none"
)

// Label returns the export label for the source.
func (s ContactSource) Label() string {
	switch s {
	case SourceLicensed:
		return "Licensed Data"
	case SourceExisting:
		return "Existing Database"
	case SourceAddress:
		return "Extracted from Address"
	case SourceGenerated:
		return "Generated"
	default:
		return "None"
	}
}

// ContactConfidence is the coarse trust tier derived from ContactSource.
type ContactConfidence string

const (
	ConfidenceHigh   ContactConfidence = "High"
	ConfidenceMedium ContactConfidence = "Medium"
	ConfidenceLow    ContactConfidence = "Low"
	ConfidenceNone   ContactConfidence = "None"
)

// Confidence maps a source to its confidence tier. The mapping is fixed:
// licensed and prior-database data are High, address-derived phones are
// Medium, heuristically generated emails are Low.
func (s ContactSource) Confidence() ContactConfidence {
	switch s {
	case SourceLicensed, SourceExisting:
		return ConfidenceHigh
	case SourceAddress:
		return ConfidenceMedium
	case SourceGenerated:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// ResolvedContact is the merge output for one applicant. It is always
// rebuilt from source precedence in full, never patched field by field.
type ResolvedContact struct {
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	ContactPerson string            `json:"contact_person,omitempty"`
	Source        ContactSource     `json:"source"`
	Confidence    ContactConfidence `json:"confidence"`
}

// PriorContact is a row from the prior contact database, keyed by
// normalized company name. It feeds the ExistingDatabase precedence tier.
type PriorContact struct {
	ID             string    `json:"id"`
	Company        string    `json:"company"`
	NormalizedName string    `json:"normalized_name"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	ContactPerson  string    `json:"contact_person,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EnrichedApplicant joins a summary with its match and resolved contact
// for the export layer.
type EnrichedApplicant struct {
	Summary ApplicantSummary `json:"summary"`
	Match   MatchResult      `json:"match"`
	Contact ResolvedContact  `json:"contact"`
}
