package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/permit-leads/internal/model"
)

func baseSummary() model.ApplicantSummary {
	return model.ApplicantSummary{
		RawName:        "Acme Plumbing Inc",
		NormalizedName: "ACME PLUMBING INC",
		ContactPerson:  "Bob Smith",
		Address:        "123 Main St",
		City:           "Minneapolis",
	}
}

func licensedMatch(phone, email string) model.MatchResult {
	return model.MatchResult{
		Decision: model.MatchFuzzy,
		Score:    0.92,
		License:  &model.LicenseRecord{Company: "ACME PLUMBING", Phone: phone, Email: email},
	}
}

func TestMerge_LicensedOutranksExisting(t *testing.T) {
	prior := &model.PriorContact{Phone: "(999) 999-9999", Email: "old@acme.com"}
	match := licensedMatch("612-555-1212", "new@acme.com")

	c := Merge(baseSummary(), prior, "", match)

	assert.Equal(t, "612-555-1212", c.Phone)
	assert.Equal(t, "new@acme.com", c.Email)
	assert.Equal(t, model.SourceLicensed, c.Source)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
}

func TestMerge_ExistingDatabase(t *testing.T) {
	prior := &model.PriorContact{Phone: "(612) 555-0000", Email: "known@acme.com", ContactPerson: "Alice Jones"}

	c := Merge(baseSummary(), prior, "", model.MatchResult{Decision: model.MatchNone})

	assert.Equal(t, "(612) 555-0000", c.Phone)
	assert.Equal(t, "known@acme.com", c.Email)
	assert.Equal(t, "Alice Jones", c.ContactPerson)
	assert.Equal(t, model.SourceExisting, c.Source)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
}

func TestMerge_AddressPhoneIsMedium(t *testing.T) {
	c := Merge(baseSummary(), nil, "(612) 555-7777", model.MatchResult{Decision: model.MatchNone})

	assert.Equal(t, "(612) 555-7777", c.Phone)
	assert.Equal(t, model.SourceAddress, c.Source)
	assert.Equal(t, model.ConfidenceMedium, c.Confidence)
	// A generated email may ride along but never lifts the confidence.
	if c.Email != "" {
		assert.Equal(t, "bob.smith@acme.com", c.Email)
	}
}

func TestMerge_GeneratedEmailOnly(t *testing.T) {
	c := Merge(baseSummary(), nil, "", model.MatchResult{Decision: model.MatchNone})

	assert.Equal(t, "", c.Phone, "a phone is never generated")
	assert.Equal(t, "bob.smith@acme.com", c.Email)
	assert.Equal(t, model.SourceGenerated, c.Source)
	assert.Equal(t, model.ConfidenceLow, c.Confidence)
}

func TestMerge_NothingAvailable(t *testing.T) {
	s := baseSummary()
	s.ContactPerson = ""

	c := Merge(s, nil, "", model.MatchResult{Decision: model.MatchNone})

	assert.Equal(t, "", c.Phone)
	assert.Equal(t, "", c.Email)
	assert.Equal(t, model.SourceNone, c.Source)
	assert.Equal(t, model.ConfidenceNone, c.Confidence)
}

func TestMerge_MixedTiersRecordHigherSource(t *testing.T) {
	// License supplies only an email; the phone falls through to the
	// address tier. The recorded source is the higher tier.
	match := licensedMatch("", "office@acme.com")

	c := Merge(baseSummary(), nil, "(612) 555-8888", match)

	assert.Equal(t, "(612) 555-8888", c.Phone)
	assert.Equal(t, "office@acme.com", c.Email)
	assert.Equal(t, model.SourceLicensed, c.Source)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
}

func TestMerge_NoneDecisionIgnoresLicense(t *testing.T) {
	// A MatchNone result never contributes license data even if a
	// License pointer is present.
	match := model.MatchResult{
		Decision: model.MatchNone,
		Score:    0.5,
		License:  &model.LicenseRecord{Phone: "612-555-9999"},
	}

	c := Merge(baseSummary(), nil, "", match)
	assert.NotEqual(t, "612-555-9999", c.Phone)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	s := baseSummary()
	prior := &model.PriorContact{Phone: "(612) 555-0000"}
	match := licensedMatch("612-555-1212", "")

	before := *prior
	_ = Merge(s, prior, "", match)

	assert.Equal(t, before, *prior)
	assert.Equal(t, baseSummary(), s)
}
