package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEmail_FirstDotLast(t *testing.T) {
	assert.Equal(t, "bob.smith@bobs.com", GenerateEmail("Bob's Plumbing Inc", "Bob Smith"))
}

func TestGenerateEmail_MiddleNameUsesFirstAndLast(t *testing.T) {
	assert.Equal(t, "mary.olson@acme.com", GenerateEmail("Acme Mechanical LLC", "Mary Jo Olson"))
}

func TestGenerateEmail_SingleNameFallsBackToInfo(t *testing.T) {
	assert.Equal(t, "info@acme.com", GenerateEmail("Acme Mechanical LLC", "Bob"))
}

func TestGenerateEmail_RejectsShortDomain(t *testing.T) {
	// "AB Plumbing Inc" reduces to "ab", under the 3-char minimum.
	assert.Equal(t, "", GenerateEmail("AB Plumbing Inc", "Bob Smith"))
}

func TestGenerateEmail_RejectsGenericDomain(t *testing.T) {
	assert.Equal(t, "", GenerateEmail("Center Plumbing", "Bob Smith"))
	assert.Equal(t, "", GenerateEmail("City Heating Co", "Bob Smith"))
}

func TestGenerateEmail_RejectsEntityContact(t *testing.T) {
	assert.Equal(t, "", GenerateEmail("Acme Plumbing", "Smith Family Trust"))
	assert.Equal(t, "", GenerateEmail("Acme Plumbing", "Estate of John Smith"))
	assert.Equal(t, "", GenerateEmail("Acme Plumbing", "Acme Holdings LLC"))
}

func TestGenerateEmail_MissingInputs(t *testing.T) {
	assert.Equal(t, "", GenerateEmail("", "Bob Smith"))
	assert.Equal(t, "", GenerateEmail("Acme Plumbing", ""))
}

func TestDomainCandidate_StripsTradeSuffixes(t *testing.T) {
	assert.Equal(t, "northern", domainCandidate("Northern Heating"))
	assert.Equal(t, "riverside", domainCandidate("Riverside Plumbing Inc"))
}

func TestDomainCandidate_KeepsHyphens(t *testing.T) {
	assert.Equal(t, "a-1rooter", domainCandidate("A-1 Rooter"))
}
