package export

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/permit-leads/internal/model"
)

var callSheetColumns = []string{
	"Company",
	"Contact Person",
	"Phone",
	"Email",
	"Activity Tier",
	"Total Permits",
	"Last Permit",
	"Top Work Types",
	"Contact Confidence",
	"Notes",
}

// WriteCallSheetXLSX writes a workbook of call-ready applicants, one row per
// applicant with a phone number, ordered by permit volume.
func WriteCallSheetXLSX(applicants []model.EnrichedApplicant, outputPath string) error {
	var callable []model.EnrichedApplicant
	for _, a := range applicants {
		if a.Contact.Phone != "" {
			callable = append(callable, a)
		}
	}
	sortByContactability(callable)

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Call Sheet")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range callSheetColumns {
		header.AddCell().Value = col
	}

	for _, a := range callable {
		row := sheet.AddRow()
		row.AddCell().Value = a.Summary.RawName
		row.AddCell().Value = a.Contact.ContactPerson
		row.AddCell().Value = a.Contact.Phone
		row.AddCell().Value = a.Contact.Email
		row.AddCell().Value = a.Summary.Tier.Label()
		row.AddCell().SetInt(a.Summary.TotalPermits)
		row.AddCell().Value = formatDate(a.Summary.LastSeen)
		row.AddCell().Value = formatWorkTypes(a.Summary.TopWorkTypes)
		row.AddCell().Value = string(a.Contact.Confidence)
		row.AddCell().Value = callNote(a)
	}

	return eris.Wrap(f.Save(outputPath), "export: save xlsx")
}

// callNote summarizes why an applicant is worth calling.
func callNote(a model.EnrichedApplicant) string {
	var parts []string
	if a.Match.Decision != model.MatchNone && a.Match.License != nil {
		parts = append(parts, fmt.Sprintf("licensed as %s", a.Match.License.Company))
	}
	if a.Summary.TotalPermits >= 10 {
		parts = append(parts, "high permit volume")
	}
	if len(a.Summary.ServiceAreas) > 3 {
		parts = append(parts, fmt.Sprintf("%d service areas", len(a.Summary.ServiceAreas)))
	}
	return strings.Join(parts, "; ")
}
