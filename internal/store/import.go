package store

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/model"
	"github.com/sells-group/permit-leads/internal/resolve"
)

// ImportCSV seeds the store from an existing contact database export.
// Expected columns: Company, Phone, Email, Contact Person. Extra columns
// are ignored and rows without a company name are skipped. Returns the
// number of contacts imported.
func ImportCSV(ctx context.Context, s ContactStore, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, eris.Wrapf(err, "store: open csv %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, eris.Wrap(err, "store: read csv header")
	}
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIdx["company"]; !ok {
		return 0, eris.New("store: csv missing company column")
	}

	imported := 0
	skipped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, eris.Wrap(err, "store: read csv row")
		}

		company := strings.TrimSpace(getCol(row, colIdx, "company"))
		if company == "" {
			skipped++
			continue
		}

		contact := &model.PriorContact{
			Company:        company,
			NormalizedName: resolve.Normalize(company),
			Phone:          strings.TrimSpace(getCol(row, colIdx, "phone")),
			Email:          strings.ToLower(strings.TrimSpace(getCol(row, colIdx, "email"))),
			ContactPerson:  strings.TrimSpace(getCol(row, colIdx, "contact person")),
		}
		if err := s.Upsert(ctx, contact); err != nil {
			return imported, err
		}
		imported++
	}

	zap.L().Info("store: imported contacts",
		zap.String("path", path),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))
	return imported, nil
}

func getCol(row []string, colIdx map[string]int, name string) string {
	i, ok := colIdx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
