package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/permit-leads/internal/model"
)

// enrichedColumns defines the ordered enriched-contact CSV output columns.
var enrichedColumns = []string{
	"Company",
	"Contact Person",
	"Phone",
	"Email",
	"Address",
	"City",
	"Total Permits",
	"Activity Tier",
	"Days Since Last",
	"Avg Permits/Year",
	"Contact Source",
	"Contact Confidence",
	"Matched License Company",
	"Match Score",
	"Service Areas",
	"Top Work Types",
	"Total Fees",
	"First Permit",
	"Last Permit",
}

// WriteEnrichedCSV writes enriched applicants as a CSV file, ordered by
// contact completeness (phone and email first), then permit volume.
func WriteEnrichedCSV(applicants []model.EnrichedApplicant, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(enrichedColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	sorted := make([]model.EnrichedApplicant, len(applicants))
	copy(sorted, applicants)
	sortByContactability(sorted)

	for _, a := range sorted {
		if err := w.Write(buildEnrichedRow(a)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	return nil
}

// WriteCallReadyCSV writes only the applicants with a phone number, using
// the same column layout as the full export.
func WriteCallReadyCSV(applicants []model.EnrichedApplicant, outputPath string) error {
	var callable []model.EnrichedApplicant
	for _, a := range applicants {
		if a.Contact.Phone != "" {
			callable = append(callable, a)
		}
	}
	return eris.Wrap(WriteEnrichedCSV(callable, outputPath), "export: call-ready")
}

// sortByContactability orders applicants by contact completeness, then by
// permit count descending, then by company name for a stable order.
func sortByContactability(applicants []model.EnrichedApplicant) {
	sort.SliceStable(applicants, func(i, j int) bool {
		ri, rj := contactRank(applicants[i].Contact), contactRank(applicants[j].Contact)
		if ri != rj {
			return ri > rj
		}
		if applicants[i].Summary.TotalPermits != applicants[j].Summary.TotalPermits {
			return applicants[i].Summary.TotalPermits > applicants[j].Summary.TotalPermits
		}
		return applicants[i].Summary.RawName < applicants[j].Summary.RawName
	})
}

func contactRank(c model.ResolvedContact) int {
	switch {
	case c.Phone != "" && c.Email != "":
		return 3
	case c.Phone != "":
		return 2
	case c.Email != "":
		return 1
	default:
		return 0
	}
}

// buildEnrichedRow maps an EnrichedApplicant to a CSV row.
func buildEnrichedRow(a model.EnrichedApplicant) []string {
	licenseCompany := ""
	if a.Match.License != nil {
		licenseCompany = a.Match.License.Company
	}

	return []string{
		a.Summary.RawName,                           // Company
		a.Contact.ContactPerson,                     // Contact Person
		a.Contact.Phone,                             // Phone
		a.Contact.Email,                             // Email
		a.Summary.Address,                           // Address
		a.Summary.City,                              // City
		fmt.Sprintf("%d", a.Summary.TotalPermits),   // Total Permits
		a.Summary.Tier.Label(),                      // Activity Tier
		formatDays(a.Summary.DaysSinceLast),         // Days Since Last
		fmt.Sprintf("%.1f", a.Summary.AvgPerYear),   // Avg Permits/Year
		a.Contact.Source.Label(),                    // Contact Source
		string(a.Contact.Confidence),                // Contact Confidence
		licenseCompany,                              // Matched License Company
		formatScore(a.Match),                        // Match Score
		strings.Join(a.Summary.ServiceAreas, "; "),  // Service Areas
		formatWorkTypes(a.Summary.TopWorkTypes),     // Top Work Types
		fmt.Sprintf("%.2f", a.Summary.TotalFees),    // Total Fees
		formatDate(a.Summary.FirstSeen),             // First Permit
		formatDate(a.Summary.LastSeen),              // Last Permit
	}
}

func formatDays(days int) string {
	if days < 0 {
		return ""
	}
	return fmt.Sprintf("%d", days)
}

func formatScore(m model.MatchResult) string {
	if m.Decision == model.MatchNone {
		return ""
	}
	return fmt.Sprintf("%.3f", m.Score)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatWorkTypes(counts []model.WorkTypeCount) string {
	parts := make([]string, 0, len(counts))
	for _, wt := range counts {
		parts = append(parts, fmt.Sprintf("%s (%d)", wt.WorkType, wt.Count))
	}
	return strings.Join(parts, "; ")
}
