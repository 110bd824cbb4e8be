package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/model"
	"github.com/sells-group/permit-leads/internal/permits"
)

var (
	aggregateInput    string
	aggregateCategory string
	aggregateOutput   string
	aggregateLimit    int
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate permit rows into per-applicant summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := loadSummaries(aggregateInput, aggregateCategory)
		if err != nil {
			return err
		}

		if aggregateOutput != "" {
			data, err := json.MarshalIndent(summaries, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal summaries")
			}
			if err := os.WriteFile(aggregateOutput, data, 0o644); err != nil {
				return eris.Wrap(err, "write summaries")
			}
			zap.L().Info("wrote summaries", zap.String("path", aggregateOutput), zap.Int("count", len(summaries)))
			return nil
		}

		for _, s := range summaries[:clampLimit(aggregateLimit, len(summaries))] {
			fmt.Printf("%-40s %4d permits  %s\n", s.RawName, s.TotalPermits, s.Tier.Label())
		}
		fmt.Printf("\n%d applicants total\n", len(summaries))
		return nil
	},
}

// clampLimit bounds a user-supplied row limit to [0, n].
func clampLimit(limit, n int) int {
	if limit < 0 {
		return 0
	}
	if limit > n {
		return n
	}
	return limit
}

// loadSummaries parses the permit CSV, applies the optional category
// filter, and aggregates per applicant.
func loadSummaries(path, category string) ([]model.ApplicantSummary, error) {
	if path == "" {
		path = cfg.Permits.Path
	}
	if category == "" {
		category = cfg.Permits.Category
	}
	if path == "" {
		return nil, eris.New("no permit csv path given (--input or permits.path)")
	}

	records, err := permits.ParseCSV(path)
	if err != nil {
		return nil, err
	}
	records = permits.FilterCategory(records, model.WorkCategory(category))

	summaries := permits.Aggregate(records, time.Now())
	zap.L().Info("aggregated permits",
		zap.Int("records", len(records)),
		zap.Int("applicants", len(summaries)))
	return summaries, nil
}

func init() {
	f := aggregateCmd.Flags()
	f.StringVarP(&aggregateInput, "input", "i", "", "permit CSV path (overrides config)")
	f.StringVarP(&aggregateCategory, "category", "c", "", "work category filter (e.g. Mechanical)")
	f.StringVarP(&aggregateOutput, "output", "o", "", "write summaries as JSON to this path")
	f.IntVar(&aggregateLimit, "limit", 25, "rows to print when not writing JSON")

	rootCmd.AddCommand(aggregateCmd)
}
