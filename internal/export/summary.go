package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/permit-leads/internal/model"
)

// FormatSummary generates a human-readable enrichment run report.
func FormatSummary(applicants []model.EnrichedApplicant) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Enrichment Summary: %d applicants\n\n", len(applicants))

	// Match outcomes.
	exact, fuzzy, none := 0, 0, 0
	for _, a := range applicants {
		switch a.Match.Decision {
		case model.MatchExact:
			exact++
		case model.MatchFuzzy:
			fuzzy++
		default:
			none++
		}
	}
	b.WriteString("## License Matching\n")
	fmt.Fprintf(&b, "- Exact matches: %d (%s)\n", exact, pct(exact, len(applicants)))
	fmt.Fprintf(&b, "- Fuzzy matches: %d (%s)\n", fuzzy, pct(fuzzy, len(applicants)))
	fmt.Fprintf(&b, "- Unmatched: %d (%s)\n\n", none, pct(none, len(applicants)))

	// Contact coverage.
	withPhone, withEmail, withBoth := 0, 0, 0
	bySource := map[model.ContactSource]int{}
	for _, a := range applicants {
		if a.Contact.Phone != "" {
			withPhone++
		}
		if a.Contact.Email != "" {
			withEmail++
		}
		if a.Contact.Phone != "" && a.Contact.Email != "" {
			withBoth++
		}
		bySource[a.Contact.Source]++
	}
	b.WriteString("## Contact Coverage\n")
	fmt.Fprintf(&b, "- With phone: %d (%s)\n", withPhone, pct(withPhone, len(applicants)))
	fmt.Fprintf(&b, "- With email: %d (%s)\n", withEmail, pct(withEmail, len(applicants)))
	fmt.Fprintf(&b, "- Call-ready (phone + email): %d (%s)\n\n", withBoth, pct(withBoth, len(applicants)))

	b.WriteString("## Contact Sources\n")
	for _, src := range []model.ContactSource{
		model.SourceLicensed,
		model.SourceExisting,
		model.SourceAddress,
		model.SourceGenerated,
		model.SourceNone,
	} {
		if n := bySource[src]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d (%s)\n", src.Label(), n, pct(n, len(applicants)))
		}
	}
	b.WriteString("\n")

	// Activity breakdown.
	byTier := map[model.ActivityTier]int{}
	for _, a := range applicants {
		byTier[a.Summary.Tier]++
	}
	b.WriteString("## Activity\n")
	for _, tier := range []model.ActivityTier{
		model.TierVeryActive,
		model.TierActive,
		model.TierModerate,
		model.TierLow,
		model.TierInactive,
		model.TierUnknown,
	} {
		if n := byTier[tier]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d (%s)\n", tier.Label(), n, pct(n, len(applicants)))
		}
	}
	b.WriteString("\n")

	// Top applicants by volume.
	top := make([]model.EnrichedApplicant, len(applicants))
	copy(top, applicants)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Summary.TotalPermits > top[j].Summary.TotalPermits
	})
	if len(top) > 10 {
		top = top[:10]
	}
	b.WriteString("## Top Applicants\n")
	for _, a := range top {
		fmt.Fprintf(&b, "- %s: %d permits, %s\n",
			a.Summary.RawName, a.Summary.TotalPermits, a.Summary.Tier.Label())
	}

	return b.String()
}

func pct(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
