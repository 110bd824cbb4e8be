package permits

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/model"
	"github.com/sells-group/permit-leads/internal/resolve"
)

// topWorkTypes caps how many work types are reported per applicant.
const topWorkTypes = 3

// accumulator collects per-applicant state during the single grouping
// pass. It exists only inside Aggregate; the emitted summaries are
// immutable.
type accumulator struct {
	rawName       string
	contactPerson string
	addresses     *counter
	cities        *counter
	areas         map[string]bool
	workTypes     *counter
	permits       int
	totalValue    float64
	totalFees     float64
	firstSeen     time.Time
	lastSeen      time.Time
}

// Aggregate groups permit records by applicant name and derives one
// summary per distinct applicant. Output order is deterministic: total
// permits descending, then name ascending. Records with unparseable
// (zero) issue dates still count toward totals but are excluded from the
// first/last date range; applicants with no dated permits at all land in
// the Unknown activity tier.
func Aggregate(records []model.PermitRecord, now time.Time) []model.ApplicantSummary {
	groups := make(map[string]*accumulator)
	var order []string

	for _, r := range records {
		acc, ok := groups[r.ApplicantName]
		if !ok {
			acc = &accumulator{
				rawName:   r.ApplicantName,
				addresses: newCounter(),
				cities:    newCounter(),
				areas:     make(map[string]bool),
				workTypes: newCounter(),
			}
			groups[r.ApplicantName] = acc
			order = append(order, r.ApplicantName)
		}

		acc.permits++
		acc.totalValue += r.Value
		acc.totalFees += r.TotalFees
		acc.addresses.add(r.ApplicantAddress)
		acc.cities.add(r.ApplicantCity)
		acc.workTypes.add(r.WorkType)
		if r.Neighborhood != "" {
			acc.areas[r.Neighborhood] = true
		}
		if acc.contactPerson == "" {
			acc.contactPerson = r.ContactName
		}
		if !r.IssueDate.IsZero() {
			if acc.firstSeen.IsZero() || r.IssueDate.Before(acc.firstSeen) {
				acc.firstSeen = r.IssueDate
			}
			if r.IssueDate.After(acc.lastSeen) {
				acc.lastSeen = r.IssueDate
			}
		}
	}

	summaries := make([]model.ApplicantSummary, 0, len(groups))
	for _, name := range order {
		summaries = append(summaries, groups[name].summary(now))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalPermits != summaries[j].TotalPermits {
			return summaries[i].TotalPermits > summaries[j].TotalPermits
		}
		return summaries[i].RawName < summaries[j].RawName
	})

	zap.L().Info("permits: aggregated applicants",
		zap.Int("records", len(records)),
		zap.Int("applicants", len(summaries)),
	)
	return summaries
}

// summary freezes the accumulator into an immutable ApplicantSummary.
func (a *accumulator) summary(now time.Time) model.ApplicantSummary {
	days := -1
	if !a.lastSeen.IsZero() {
		days = int(now.Sub(a.lastSeen).Hours() / 24)
	}

	years := 0.0
	if !a.firstSeen.IsZero() && !a.lastSeen.IsZero() {
		years = round1(a.lastSeen.Sub(a.firstSeen).Hours() / 24 / 365.25)
	}
	denom := years
	if denom == 0 {
		denom = 1
	}

	areas := make([]string, 0, len(a.areas))
	for area := range a.areas {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	return model.ApplicantSummary{
		RawName:        a.rawName,
		NormalizedName: resolve.Normalize(a.rawName),
		ContactPerson:  a.contactPerson,
		Address:        a.addresses.top(),
		City:           a.cities.top(),
		TotalPermits:   a.permits,
		FirstSeen:      a.firstSeen,
		LastSeen:       a.lastSeen,
		DaysSinceLast:  days,
		YearsActive:    years,
		AvgPerYear:     round1(float64(a.permits) / denom),
		Tier:           model.ClassifyActivity(days),
		ServiceAreas:   areas,
		TopWorkTypes:   a.workTypes.topN(topWorkTypes),
		TotalValue:     a.totalValue,
		TotalFees:      a.totalFees,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// counter tracks value frequencies while remembering first-seen order so
// ties resolve deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(v string) {
	if v == "" {
		return
	}
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// top returns the most frequent value, earliest-seen on ties.
func (c *counter) top() string {
	best := ""
	bestCount := 0
	for _, v := range c.order {
		if c.counts[v] > bestCount {
			best = v
			bestCount = c.counts[v]
		}
	}
	return best
}

// topN returns the n most frequent values with counts, earliest-seen on ties.
func (c *counter) topN(n int) []model.WorkTypeCount {
	sorted := make([]string, len(c.order))
	copy(sorted, c.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.counts[sorted[i]] > c.counts[sorted[j]]
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]model.WorkTypeCount, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, model.WorkTypeCount{WorkType: v, Count: c.counts[v]})
	}
	return out
}
