package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/directory"
	"github.com/sells-group/permit-leads/internal/model"
)

var (
	licensesInput  string
	licensesOutput string
	licensesDryRun bool
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "Extract license records from a directory dump",
	Long:  "Parses a license-directory text or PDF dump and extracts company, phone, and email per approved license line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadLicenses(cmd.Context(), licensesInput)
		if err != nil {
			return err
		}

		if licensesDryRun {
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal licenses")
			}
			fmt.Println(string(data))
			return nil
		}

		if licensesOutput != "" {
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal licenses")
			}
			if err := os.WriteFile(licensesOutput, data, 0o644); err != nil {
				return eris.Wrap(err, "write licenses")
			}
		}

		fmt.Printf("%d license records extracted\n", len(records))
		return nil
	},
}

// loadLicenses reads the directory dump and extracts license records.
func loadLicenses(ctx context.Context, path string) ([]model.LicenseRecord, error) {
	if path == "" {
		path = cfg.Directory.Path
	}
	if path == "" {
		return nil, eris.New("no directory dump path given (--input or directory.path)")
	}

	src := directory.NewSource(path, cfg.Directory.PDFProvider, cfg.Directory.PdfToTextPath)
	text, err := src.Text(ctx)
	if err != nil {
		return nil, err
	}

	ext := directory.NewExtractor(cfg.Directory.Marker, cfg.Directory.StatusToken)
	records := ext.Extract(text)
	zap.L().Info("extracted licenses", zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}

func init() {
	f := licensesCmd.Flags()
	f.StringVarP(&licensesInput, "input", "i", "", "directory dump path, .txt or .pdf (overrides config)")
	f.StringVarP(&licensesOutput, "output", "o", "", "write records as JSON to this path")
	f.BoolVar(&licensesDryRun, "dry-run", false, "print extracted records without writing")

	rootCmd.AddCommand(licensesCmd)
}
