package contact

import (
	"regexp"
	"strings"
)

// domainSuffixWords are stripped from the end of a domain candidate, one
// pass each in order: generic legal suffixes first, then the trade words
// contractors commonly carry in their company names.
var domainSuffixWords = []string{
	"inc", "llc", "corp", "corporation", "company", "co", "ltd",
	"plumbing", "mechanical", "heating", "cooling", "hvac",
	"services", "service",
}

// genericDomains are tokens too ambiguous to make a usable domain.
var genericDomains = map[string]bool{
	"center": true,
	"point":  true,
	"urban":  true,
	"city":   true,
}

// entityPersonWords flag a contact "person" that is actually a trust,
// estate, or business entity; no personal email can be inferred.
var entityPersonWords = []string{"trust", "estate", "llc", "inc"}

var nonDomainChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var whitespace = regexp.MustCompile(`\s+`)

// GenerateEmail builds a best-guess email from a company name and a
// contact person. This is an explicitly low-confidence last resort:
// callers must tag the result with the Generated source and must never
// let it override a higher-precedence value. Returns "" when no
// plausible address can be formed.
func GenerateEmail(companyName, contactPerson string) string {
	if companyName == "" || contactPerson == "" {
		return ""
	}

	domain := domainCandidate(companyName)
	if domain == "" {
		return ""
	}

	lowerPerson := strings.ToLower(contactPerson)
	for _, w := range entityPersonWords {
		if strings.Contains(lowerPerson, w) {
			return ""
		}
	}

	parts := strings.Fields(contactPerson)
	if len(parts) >= 2 {
		first := strings.ToLower(parts[0])
		last := strings.ToLower(parts[len(parts)-1])
		return first + "." + last + "@" + domain + ".com"
	}
	return "info@" + domain + ".com"
}

// domainCandidate derives a domain label from a company name: lowercase,
// punctuation dropped, whitespace removed, generic suffix words stripped
// from the end. Candidates shorter than three characters or on the
// generic-token denylist yield "".
func domainCandidate(companyName string) string {
	d := strings.ToLower(companyName)
	d = nonDomainChars.ReplaceAllString(d, "")
	d = whitespace.ReplaceAllString(d, "")

	for _, suffix := range domainSuffixWords {
		d = strings.TrimSuffix(d, suffix)
	}

	if len(d) < 3 || genericDomains[d] {
		return ""
	}
	return d
}
