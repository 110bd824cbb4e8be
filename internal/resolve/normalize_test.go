package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalize_Uppercase(t *testing.T) {
	assert.Equal(t, "ACME PLUMBING", Normalize("Acme Plumbing"))
}

func TestNormalize_Punctuation(t *testing.T) {
	assert.Equal(t, "BOBS PLUMBING INC", Normalize("Bob's Plumbing, Inc."))
	assert.Equal(t, "NORTH STAR MECHANICAL", Normalize(`"North-Star" Mechanical`))
	// Apostrophes are deleted, not spaced: possessives must not split
	// into separate tokens.
	assert.Equal(t, "OBRIENS HEATING CO", Normalize("O'Brien's Heating Co."))
}

func TestNormalize_LongSuffixForms(t *testing.T) {
	assert.Equal(t, "ACME INC", Normalize("Acme Incorporated"))
	assert.Equal(t, "ACME CORP", Normalize("Acme Corporation"))
	assert.Equal(t, "ACME LLC", Normalize("Acme Limited Liability Company"))
	assert.Equal(t, "ACME LTD", Normalize("Acme Limited"))
	assert.Equal(t, "ACME CO", Normalize("Acme Company"))
}

func TestNormalize_AndToAmpersand(t *testing.T) {
	assert.Equal(t, "SMITH & JONES", Normalize("Smith and Jones"))
	assert.Equal(t, "SMITH & JONES", Normalize("Smith & Jones"))
}

func TestNormalize_CollapseWhitespace(t *testing.T) {
	assert.Equal(t, "ACME PLUMBING", Normalize("  Acme    Plumbing  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Bob's Plumbing, Inc.",
		"Smith and Jones Mechanical Corporation",
		"A-1 Heating & Cooling Limited Liability Company",
		"  ALREADY NORMALIZED LLC  ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestStripCoreSuffixes_WholeWordsOnly(t *testing.T) {
	assert.Equal(t, "ACME PLUMBING", StripCoreSuffixes("ACME PLUMBING INC"))
	assert.Equal(t, "ACME", StripCoreSuffixes("ACME LLC"))
	// Tokens are removed as whole words, not substrings.
	assert.Equal(t, "COLTD INCLINE", StripCoreSuffixes("COLTD INCLINE"))
}

func TestStripCoreSuffixes_Empty(t *testing.T) {
	assert.Equal(t, "", StripCoreSuffixes(""))
	assert.Equal(t, "", StripCoreSuffixes("INC LLC"))
}
