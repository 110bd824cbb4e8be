// Package resolve matches permit applicants against license-directory
// entities: name normalization, similarity scoring, and best-candidate
// selection.
package resolve

import (
	"regexp"
	"strings"
)

// suffixReplacements maps long legal-suffix forms to their short forms.
// Order matters: longer phrases must be replaced before shorter phrases
// they contain (" LIMITED LIABILITY COMPANY" before " LIMITED", which in
// turn must run before " COMPANY").
var suffixReplacements = []struct{ old, new string }{
	{" INCORPORATED", " INC"},
	{" CORPORATION", " CORP"},
	{" LIMITED LIABILITY COMPANY", " LLC"},
	{" LIMITED", " LTD"},
	{" COMPANY", " CO"},
	{" AND ", " & "},
}

// punctReplacer drops comparison-irrelevant punctuation. Apostrophes are
// deleted outright so "Bob's Plumbing, Inc." and "BOBS PLUMBING INC"
// normalize identically; the rest become spaces to keep word boundaries.
// Ampersands survive: " AND " canonicalizes to " & " afterward, and
// stripping "&" here would undo that and break idempotence.
var punctReplacer = strings.NewReplacer(
	".", " ",
	",", " ",
	"'", "",
	"\"", " ",
	"-", " ",
)

// coreSuffixWords are the legal-entity tokens removed by StripCoreSuffixes.
var coreSuffixWords = map[string]bool{
	"INC":         true,
	"LLC":         true,
	"CORP":        true,
	"LTD":         true,
	"CO":          true,
	"COMPANY":     true,
	"CORPORATION": true,
	"LIMITED":     true,
}

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// Normalize canonicalizes a company name for comparison. The result is
// used only for matching, never for display. Normalize is idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	name = strings.ToUpper(name)
	name = punctReplacer.Replace(name)

	for _, r := range suffixReplacements {
		name = strings.ReplaceAll(name, r.old, r.new)
	}

	name = multiSpaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// StripCoreSuffixes removes legal-entity tokens from an already-normalized
// name as whole words, leaving the core business name. Used only as a
// matching fallback for parent/subsidiary name variants.
func StripCoreSuffixes(normalized string) string {
	if normalized == "" {
		return ""
	}

	fields := strings.Fields(normalized)
	kept := fields[:0]
	for _, f := range fields {
		if !coreSuffixWords[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
