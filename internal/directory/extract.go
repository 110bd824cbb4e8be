// Package directory parses a loosely structured license-directory text
// dump into structured license records. The input mixes record and
// non-record lines; a record line starts with a fixed license-type
// marker and carries company name, address, phone, and email interleaved
// as free text without column delimiters.
package directory

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/model"
)

var (
	phoneRe = regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// streetRe marks where a street address begins: digits followed by a
	// capitalized word ("123 MAIN ST").
	streetRe = regexp.MustCompile(`\d+\s+[A-Z]`)
)

// Extractor turns directory text into license records. Each line is
// parsed through named stages (marker, contact spans, company span) so
// each rule is testable on its own.
type Extractor struct {
	// Marker is the record-marker token a record line begins with,
	// e.g. the license-type code "L101".
	Marker string
	// StatusToken is the token the company name follows, e.g. "APPROVED".
	StatusToken string
}

// NewExtractor creates an extractor with the given marker and status
// token. Empty arguments fall back to the plumbing-directory defaults.
func NewExtractor(marker, statusToken string) *Extractor {
	if marker == "" {
		marker = "L101"
	}
	if statusToken == "" {
		statusToken = "APPROVED"
	}
	return &Extractor{Marker: marker, StatusToken: statusToken}
}

// Extract parses the full directory text. Lines that do not match the
// record grammar are skipped silently: directories legitimately mix
// record and non-record lines, so a malformed line is not an error.
// Only records with a company name and at least one contact field are
// returned.
func (e *Extractor) Extract(text string) []model.LicenseRecord {
	var records []model.LicenseRecord
	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isHeaderLine(line) {
			continue
		}
		if !strings.HasPrefix(line, e.Marker) {
			continue
		}

		rec, ok := e.parseLine(line)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	zap.L().Info("directory: extraction complete",
		zap.Int("records", len(records)),
		zap.Int("marker_lines_skipped", skipped),
	)
	return records
}

// isHeaderLine detects the column-header line of the directory.
func isHeaderLine(line string) bool {
	return strings.Contains(line, "License Type") && strings.Contains(line, "Applicant Name")
}

// parseLine extracts one record from a marker line. The phone and email
// spans are located independently; the company span runs from the status
// token to the first terminator (street address, phone, email, or end of
// line). Lines yielding no company name or no contact field produce no
// record.
func (e *Extractor) parseLine(line string) (model.LicenseRecord, bool) {
	phone := phoneRe.FindString(line)
	email := emailRe.FindString(line)

	company := e.companySpan(line, phone, email)
	if company == "" {
		return model.LicenseRecord{}, false
	}

	rec := model.LicenseRecord{
		Company: company,
		Phone:   phone,
		Email:   strings.ToLower(email),
	}
	if !rec.HasContact() {
		return model.LicenseRecord{}, false
	}
	return rec, true
}

// companySpan returns the company name between the status token and the
// first terminator. Internal whitespace is collapsed.
func (e *Extractor) companySpan(line, phone, email string) string {
	idx := strings.Index(line, e.StatusToken)
	if idx < 0 {
		return ""
	}
	after := strings.TrimSpace(line[idx+len(e.StatusToken):])

	end := len(after)
	if loc := streetRe.FindStringIndex(after); loc != nil {
		end = loc[0]
	} else if phone != "" {
		if i := strings.Index(after, phone); i >= 0 {
			end = i
		}
	} else if email != "" {
		if i := strings.Index(after, email); i >= 0 {
			end = i
		}
	}

	return strings.Join(strings.Fields(after[:end]), " ")
}
