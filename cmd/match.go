package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/permit-leads/internal/model"
	"github.com/sells-group/permit-leads/internal/resolve"
)

var (
	matchPermits   string
	matchLicenses  string
	matchCategory  string
	matchThreshold float64
	matchShowAll   bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match permit applicants against the license directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := loadSummaries(matchPermits, matchCategory)
		if err != nil {
			return err
		}
		licenses, err := loadLicenses(cmd.Context(), matchLicenses)
		if err != nil {
			return err
		}

		threshold := matchThreshold
		if threshold == 0 {
			threshold = cfg.Match.Threshold
		}
		matcher := &resolve.Matcher{Threshold: threshold, Workers: cfg.Match.Workers}
		results := matcher.MatchAll(cmd.Context(), summaries, licenses)

		exact, fuzzy, none := 0, 0, 0
		for i, r := range results {
			switch r.Decision {
			case model.MatchExact:
				exact++
			case model.MatchFuzzy:
				fuzzy++
			default:
				none++
			}
			if r.Decision != model.MatchNone {
				fmt.Printf("%-40s -> %-40s %.3f (%s)\n",
					summaries[i].RawName, r.License.Company, r.Score, r.Decision)
			} else if matchShowAll {
				fmt.Printf("%-40s -> no match (best %.3f)\n", summaries[i].RawName, r.Score)
			}
		}

		fmt.Printf("\n%d exact, %d fuzzy, %d unmatched of %d applicants\n",
			exact, fuzzy, none, len(summaries))
		return nil
	},
}

func init() {
	f := matchCmd.Flags()
	f.StringVar(&matchPermits, "permits", "", "permit CSV path (overrides config)")
	f.StringVar(&matchLicenses, "licenses", "", "directory dump path (overrides config)")
	f.StringVarP(&matchCategory, "category", "c", "", "work category filter")
	f.Float64Var(&matchThreshold, "threshold", 0, "fuzzy match threshold (overrides config)")
	f.BoolVar(&matchShowAll, "all", false, "also print unmatched applicants")

	rootCmd.AddCommand(matchCmd)
}
