package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/permit-leads/internal/model"
)

func summaryFor(name string) model.ApplicantSummary {
	return model.ApplicantSummary{RawName: name, NormalizedName: Normalize(name)}
}

func TestMatchAll_Exact(t *testing.T) {
	m := &Matcher{}
	candidates := []model.LicenseRecord{
		{Company: "Zenith Roofing", Phone: "612-555-0000"},
		{Company: "Bob's Plumbing, Inc.", Phone: "612-555-1111"},
	}

	results := m.MatchAll(context.Background(), []model.ApplicantSummary{summaryFor("BOBS PLUMBING INC")}, candidates)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, model.MatchExact, r.Decision)
	assert.Equal(t, 1.0, r.Score)
	require.NotNil(t, r.License)
	assert.Equal(t, "Bob's Plumbing, Inc.", r.License.Company)
}

func TestMatchAll_FuzzyViaContainment(t *testing.T) {
	m := &Matcher{}
	candidates := []model.LicenseRecord{
		{Company: "ABC Plumbing LLC", Phone: "612-555-2222"},
	}

	results := m.MatchAll(context.Background(), []model.ApplicantSummary{summaryFor("ABC Plumbing")}, candidates)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, model.MatchFuzzy, r.Decision)
	assert.GreaterOrEqual(t, r.Score, 0.9)
	require.NotNil(t, r.License)
}

func TestMatchAll_NoneBelowThreshold(t *testing.T) {
	m := &Matcher{}
	candidates := []model.LicenseRecord{
		{Company: "Zenith Roofing Partners", Phone: "612-555-3333"},
	}

	results := m.MatchAll(context.Background(), []model.ApplicantSummary{summaryFor("Acme Plumbing")}, candidates)
	require.Len(t, results, 1)

	assert.Equal(t, model.MatchNone, results[0].Decision)
	assert.Nil(t, results[0].License)
}

func TestMatchAll_NoCandidates(t *testing.T) {
	m := &Matcher{}
	results := m.MatchAll(context.Background(), []model.ApplicantSummary{summaryFor("Acme Plumbing")}, nil)
	require.Len(t, results, 1)
	assert.Equal(t, model.MatchNone, results[0].Decision)
	assert.Equal(t, 0.0, results[0].Score)
}

func TestMatchAll_GlobalMax(t *testing.T) {
	m := &Matcher{}
	summary := summaryFor("Acme Plumbing Inc")
	candidates := []model.LicenseRecord{
		{Company: "Acme Plusbing Inc", Phone: "1"},  // close but not exact
		{Company: "Acme Plumbing Inc", Phone: "2"},  // exact
		{Company: "Acme Plumbing LLC", Phone: "3"},  // fuzzy
	}

	results := m.MatchAll(context.Background(), []model.ApplicantSummary{summary}, candidates)
	require.Len(t, results, 1)

	// The returned score must equal the maximum over all candidates.
	want := 0.0
	for _, c := range candidates {
		if s := Score(summary.RawName, c.Company); s > want {
			want = s
		}
	}
	assert.Equal(t, want, results[0].Score)
	require.NotNil(t, results[0].License)
	assert.Equal(t, "2", results[0].License.Phone)
}

func TestMatchAll_TieKeepsFirstSeen(t *testing.T) {
	m := &Matcher{}
	// Two candidates normalize identically, so both score 1.0; the
	// first in input order must win on every run.
	candidates := []model.LicenseRecord{
		{Company: "Acme Plumbing Inc.", Phone: "first"},
		{Company: "ACME PLUMBING INC", Phone: "second"},
	}

	for range 10 {
		results := m.MatchAll(context.Background(), []model.ApplicantSummary{summaryFor("Acme Plumbing Inc")}, candidates)
		require.Len(t, results, 1)
		require.NotNil(t, results[0].License)
		assert.Equal(t, "first", results[0].License.Phone)
	}
}

func TestMatchAll_ParallelMatchesSerial(t *testing.T) {
	summaries := []model.ApplicantSummary{
		summaryFor("Acme Plumbing Inc"),
		summaryFor("ABC Plumbing"),
		summaryFor("Zenith Roofing Partners"),
		summaryFor("North Star Mechanical"),
	}
	candidates := []model.LicenseRecord{
		{Company: "Acme Plumbing Inc", Phone: "1"},
		{Company: "ABC Plumbing LLC", Phone: "2"},
		{Company: "North Star Mechanical Co", Phone: "3"},
	}

	serial := (&Matcher{Workers: 1}).MatchAll(context.Background(), summaries, candidates)
	parallel := (&Matcher{Workers: 4}).MatchAll(context.Background(), summaries, candidates)
	assert.Equal(t, serial, parallel)
}
