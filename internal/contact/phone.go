// Package contact resolves final contact fields for an applicant from
// competing sources under a fixed precedence order, plus the last-resort
// heuristics (address-derived phones, generated emails) feeding the
// lowest tiers.
package contact

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

// phonePatterns are tried in order against free-text address fields.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\b\d{10}\b`),
}

// PhoneFromAddress extracts the first phone-shaped substring from a
// free-text address field and returns it in national format, or "" when
// nothing phone-shaped is present.
func PhoneFromAddress(address string) string {
	if address == "" {
		return ""
	}
	for _, p := range phonePatterns {
		if m := p.FindString(address); m != "" {
			if formatted := FormatUS(m); formatted != "" {
				return formatted
			}
		}
	}
	return ""
}

// FormatUS parses a raw phone string as a US number and renders it in
// national format, e.g. "(612) 555-1212". Returns "" when the digits do
// not form a possible number.
func FormatUS(raw string) string {
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}
