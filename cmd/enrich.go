package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/contact"
	"github.com/sells-group/permit-leads/internal/export"
	"github.com/sells-group/permit-leads/internal/model"
	"github.com/sells-group/permit-leads/internal/resolve"
	"github.com/sells-group/permit-leads/internal/store"
)

var (
	enrichPermits  string
	enrichLicenses string
	enrichCategory string
	enrichOutDir   string
	enrichNoStore  bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run the full enrichment pipeline and export lead lists",
	Long: `Aggregates permits per applicant, matches applicants against the
license directory, merges contact data by source precedence, and writes
the enriched CSV, call-ready CSV, call-sheet workbook, and HTML dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		summaries, err := loadSummaries(enrichPermits, enrichCategory)
		if err != nil {
			return err
		}
		licenses, err := loadLicenses(ctx, enrichLicenses)
		if err != nil {
			return err
		}

		matcher := &resolve.Matcher{Threshold: cfg.Match.Threshold, Workers: cfg.Match.Workers}
		results := matcher.MatchAll(ctx, summaries, licenses)

		// Prior-contact store is optional for a first run.
		var st store.ContactStore
		if !enrichNoStore && cfg.Store.Path != "" {
			s, err := store.NewSQLite(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Migrate(ctx); err != nil {
				return err
			}
			st = s
		}

		applicants := make([]model.EnrichedApplicant, len(summaries))
		for i, s := range summaries {
			var prior *model.PriorContact
			if st != nil {
				prior, err = st.GetByCompany(ctx, s.NormalizedName)
				if err != nil {
					return err
				}
			}
			addressPhone := contact.PhoneFromAddress(s.Address)
			applicants[i] = model.EnrichedApplicant{
				Summary: s,
				Match:   results[i],
				Contact: contact.Merge(s, prior, addressPhone, results[i]),
			}
		}

		outDir := enrichOutDir
		if outDir == "" {
			outDir = cfg.Export.Dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrap(err, "create output dir")
		}

		if err := export.WriteEnrichedCSV(applicants, filepath.Join(outDir, "enriched_contacts.csv")); err != nil {
			return err
		}
		if err := export.WriteCallReadyCSV(applicants, filepath.Join(outDir, "call_ready.csv")); err != nil {
			return err
		}
		if err := export.WriteCallSheetXLSX(applicants, filepath.Join(outDir, "call_sheet.xlsx")); err != nil {
			return err
		}
		if err := export.WriteDashboardHTML(applicants, filepath.Join(outDir, "dashboard.html")); err != nil {
			return err
		}

		summary := export.FormatSummary(applicants)
		if err := os.WriteFile(filepath.Join(outDir, "summary.md"), []byte(summary), 0o644); err != nil {
			return eris.Wrap(err, "write summary")
		}
		fmt.Println(summary)

		zap.L().Info("enrichment complete",
			zap.Int("applicants", len(applicants)),
			zap.Int("licenses", len(licenses)),
			zap.String("output", outDir))
		return nil
	},
}

func init() {
	f := enrichCmd.Flags()
	f.StringVar(&enrichPermits, "permits", "", "permit CSV path (overrides config)")
	f.StringVar(&enrichLicenses, "licenses", "", "directory dump path (overrides config)")
	f.StringVarP(&enrichCategory, "category", "c", "", "work category filter")
	f.StringVarP(&enrichOutDir, "output", "o", "", "output directory (overrides config)")
	f.BoolVar(&enrichNoStore, "no-store", false, "skip the prior-contact database")

	rootCmd.AddCommand(enrichCmd)
}
