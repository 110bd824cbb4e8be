// Package model defines the value types shared across the permit-leads
// pipeline. Records are constructed once by their producing stage and
// never mutated afterward; every derivation produces a new value.
package model

import "time"

// PermitRecord is a single row from a municipal permit export.
// Zero-valued dates mean the source field was missing or unparseable.
type PermitRecord struct {
	PermitNumber     string    `json:"permit_number"`
	ApplicantName    string    `json:"applicant_name"`
	ApplicantAddress string    `json:"applicant_address"`
	ApplicantCity    string    `json:"applicant_city"`
	ContactName      string    `json:"contact_name"`
	Neighborhood     string    `json:"neighborhood"`
	PermitType       string    `json:"permit_type"`
	WorkType         string    `json:"work_type"`
	Status           string    `json:"status"`
	Value            float64   `json:"value"`
	TotalFees        float64   `json:"total_fees"`
	IssueDate        time.Time `json:"issue_date"`
	CompleteDate     time.Time `json:"complete_date"`
}

// WorkCategory buckets permit types into the major trade categories.
type WorkCategory string

const (
	CategoryPlumbing    WorkCategory = "Plumbing"
	CategoryMechanical  WorkCategory = "Mechanical"
	CategorySolar       WorkCategory = "Solar"
	CategorySign        WorkCategory = "Sign"
	CategoryWrecking    WorkCategory = "Wrecking/Demo"
	CategorySoilErosion WorkCategory = "Soil Erosion"
	CategoryBuilding    WorkCategory = "Building"
	CategoryOther       WorkCategory = "Other"
)

// ActivityTier classifies how recently an applicant pulled a permit.
type ActivityTier string

const (
	TierVeryActive ActivityTier = "very_active"
	TierActive     ActivityTier = "active"
	TierModerate   ActivityTier = "moderate"
	TierLow        ActivityTier = "low"
	TierInactive   ActivityTier = "inactive"
	TierUnknown    ActivityTier = "unknown"
)

// Label returns the human-readable tier label used in exports.
func (t ActivityTier) Label() string {
	switch t {
	case TierVeryActive:
		return "Very Active (< 30 days)"
	case TierActive:
		return "Active (30-90 days)"
	case TierModerate:
		return "Moderate (90-180 days)"
	case TierLow:
		return "Low (180-365 days)"
	case TierInactive:
		return "Inactive (> 1 year)"
	default:
		return "Unknown"
	}
}

// ClassifyActivity maps days-since-last-permit onto an ActivityTier.
// Applicants whose last permit date is unknown (negative days) land in
// TierUnknown rather than being force-fit into a recency bucket.
func ClassifyActivity(daysSinceLast int) ActivityTier {
	switch {
	case daysSinceLast < 0:
		return TierUnknown
	case daysSinceLast <= 30:
		return TierVeryActive
	case daysSinceLast <= 90:
		return TierActive
	case daysSinceLast <= 180:
		return TierModerate
	case daysSinceLast <= 365:
		return TierLow
	default:
		return TierInactive
	}
}

// WorkTypeCount pairs a work type with how often it appears for one applicant.
type WorkTypeCount struct {
	WorkType string `json:"work_type"`
	Count    int    `json:"count"`
}

// ApplicantSummary is the per-applicant aggregate computed over the full
// permit set. One summary exists per distinct applicant name and is
// recomputed wholesale on each run; there is no persistent identity.
type ApplicantSummary struct {
	RawName        string          `json:"raw_name"`
	NormalizedName string          `json:"normalized_name"`
	ContactPerson  string          `json:"contact_person,omitempty"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city,omitempty"`
	TotalPermits   int             `json:"total_permits"`
	FirstSeen      time.Time       `json:"first_seen"`
	LastSeen       time.Time       `json:"last_seen"`
	DaysSinceLast  int             `json:"days_since_last"` // -1 when LastSeen is unknown
	YearsActive    float64         `json:"years_active"`
	AvgPerYear     float64         `json:"avg_permits_per_year"`
	Tier           ActivityTier    `json:"activity_tier"`
	ServiceAreas   []string        `json:"service_areas,omitempty"`
	TopWorkTypes   []WorkTypeCount `json:"top_work_types,omitempty"`
	TotalValue     float64         `json:"total_value"`
	TotalFees      float64         `json:"total_fees"`
}
