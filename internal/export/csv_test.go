package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/permit-leads/internal/model"
)

func sampleApplicants() []model.EnrichedApplicant {
	lastSeen := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []model.EnrichedApplicant{
		{
			Summary: model.ApplicantSummary{
				RawName:       "Main St Mechanical",
				TotalPermits:  4,
				Tier:          model.TierActive,
				DaysSinceLast: 45,
				AvgPerYear:    2.0,
				FirstSeen:     lastSeen.AddDate(-2, 0, 0),
				LastSeen:      lastSeen,
				ServiceAreas:  []string{"Downtown", "Northeast"},
				TopWorkTypes:  []model.WorkTypeCount{{WorkType: "Replace furnace", Count: 3}},
				TotalFees:     812.50,
			},
			Match: model.MatchResult{
				Decision: model.MatchFuzzy,
				Score:    0.9,
				License:  &model.LicenseRecord{Company: "MAIN ST MECHANICAL LLC", Phone: "(612) 555-0101"},
			},
			Contact: model.ResolvedContact{
				Phone:      "(612) 555-0101",
				Email:      "info@mainstmechanical.com",
				Source:     model.SourceLicensed,
				Confidence: model.ConfidenceHigh,
			},
		},
		{
			Summary: model.ApplicantSummary{
				RawName:       "Apex Plumbing",
				TotalPermits:  9,
				Tier:          model.TierVeryActive,
				DaysSinceLast: 10,
				AvgPerYear:    4.5,
				LastSeen:      lastSeen,
			},
			Match: model.MatchResult{Decision: model.MatchNone, Score: 0.4},
			Contact: model.ResolvedContact{
				Source:     model.SourceNone,
				Confidence: model.ConfidenceNone,
			},
		},
		{
			Summary: model.ApplicantSummary{
				RawName:       "Homeowner Jane Doe",
				TotalPermits:  1,
				Tier:          model.TierUnknown,
				DaysSinceLast: -1,
			},
			Match: model.MatchResult{Decision: model.MatchNone},
			Contact: model.ResolvedContact{
				Email:      "jane.doe@homeownerjane.com",
				Source:     model.SourceGenerated,
				Confidence: model.ConfidenceLow,
			},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteEnrichedCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "enriched.csv")
	require.NoError(t, WriteEnrichedCSV(sampleApplicants(), out))

	rows := readCSV(t, out)
	require.Len(t, rows, 4)
	assert.Equal(t, enrichedColumns, rows[0])

	// Phone+email outranks email only, which outranks no contact.
	assert.Equal(t, "Main St Mechanical", rows[1][0])
	assert.Equal(t, "Homeowner Jane Doe", rows[2][0])
	assert.Equal(t, "Apex Plumbing", rows[3][0])

	assert.Equal(t, "MAIN ST MECHANICAL LLC", rows[1][12])
	assert.Equal(t, "0.900", rows[1][13])
	assert.Equal(t, "Downtown; Northeast", rows[1][14])
	assert.Equal(t, "Replace furnace (3)", rows[1][15])

	// Unmatched rows leave license and score blank.
	assert.Empty(t, rows[3][12])
	assert.Empty(t, rows[3][13])

	// Unknown activity leaves days blank.
	assert.Empty(t, rows[2][8])
}

func TestWriteCallReadyCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "call_ready.csv")
	require.NoError(t, WriteCallReadyCSV(sampleApplicants(), out))

	rows := readCSV(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "Main St Mechanical", rows[1][0])
}

func TestWriteEnrichedCSVEmpty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteEnrichedCSV(nil, out))

	rows := readCSV(t, out)
	require.Len(t, rows, 1)
}

func TestWriteEnrichedCSVDoesNotReorderInput(t *testing.T) {
	applicants := sampleApplicants()
	first := applicants[0].Summary.RawName

	out := filepath.Join(t.TempDir(), "enriched.csv")
	require.NoError(t, WriteEnrichedCSV(applicants, out))

	assert.Equal(t, first, applicants[0].Summary.RawName)
}
