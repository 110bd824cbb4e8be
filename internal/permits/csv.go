// Package permits loads a municipal permit export and aggregates it into
// per-applicant summaries.
package permits

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/model"
)

// dateLayouts are tried in order against permit date columns. Export
// formats drift between vendor versions, so several are accepted;
// anything unparseable coerces to the zero time rather than failing.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006/01/02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseCSV reads a permit export and returns one PermitRecord per row
// with a non-empty applicant name. Rows with malformed dates or numbers
// are kept with sentinel zero values; only a missing applicant name
// drops the row.
func ParseCSV(csvPath string) ([]model.PermitRecord, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, eris.Wrap(err, "permits: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "permits: read csv")
	}
	if len(records) < 2 {
		return nil, eris.New("permits: csv has no data rows")
	}

	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}

	for _, col := range []string{"applicantName", "permitType", "issueDate"} {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("permits: missing required column %q", col)
		}
	}

	var out []model.PermitRecord
	skipped := 0
	for _, row := range records[1:] {
		name := getCol(row, colIdx, "applicantName")
		if name == "" {
			skipped++
			continue
		}

		out = append(out, model.PermitRecord{
			PermitNumber:     getCol(row, colIdx, "permitNumber"),
			ApplicantName:    name,
			ApplicantAddress: getCol(row, colIdx, "applicantAddress1"),
			ApplicantCity:    getCol(row, colIdx, "applicantCity"),
			ContactName:      getCol(row, colIdx, "fullName"),
			Neighborhood:     getCol(row, colIdx, "Neighborhoods_Desc"),
			PermitType:       getCol(row, colIdx, "permitType"),
			WorkType:         getCol(row, colIdx, "workType"),
			Status:           getCol(row, colIdx, "status"),
			Value:            parseFloat(getCol(row, colIdx, "value")),
			TotalFees:        parseFloat(getCol(row, colIdx, "totalFees")),
			IssueDate:        parseDate(getCol(row, colIdx, "issueDate")),
			CompleteDate:     parseDate(getCol(row, colIdx, "completeDate")),
		})
	}

	if len(out) == 0 {
		return nil, eris.New("permits: no valid rows found in csv")
	}

	zap.L().Info("permits: parsed csv",
		zap.Int("rows", len(out)),
		zap.Int("skipped", skipped),
	)
	return out, nil
}

// getCol safely retrieves a column value from a CSV row.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDate tries the known layouts and returns the zero time on failure.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
