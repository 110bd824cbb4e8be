package contact

import (
	"github.com/sells-group/permit-leads/internal/model"
)

// source tiers, highest precedence first. The merged record's source is
// the highest tier that contributed any field.
const (
	tierNone = iota
	tierGenerated
	tierAddress
	tierExisting
	tierLicensed
)

func tierSource(tier int) model.ContactSource {
	switch tier {
	case tierLicensed:
		return model.SourceLicensed
	case tierExisting:
		return model.SourceExisting
	case tierAddress:
		return model.SourceAddress
	case tierGenerated:
		return model.SourceGenerated
	default:
		return model.SourceNone
	}
}

// Merge combines contact fields from up to four candidate sources under
// the fixed precedence order: licensed data, prior database, phone
// extracted from the address text (phone only), generated email (email
// only). Pure: inputs are never mutated, and the result is always
// rebuilt from precedence in full.
//
// addressPhone is the caller-supplied result of PhoneFromAddress on the
// summary's address field; prior may be nil when the applicant has no
// row in the prior contact database.
func Merge(summary model.ApplicantSummary, prior *model.PriorContact, addressPhone string, match model.MatchResult) model.ResolvedContact {
	var license *model.LicenseRecord
	if match.Decision != model.MatchNone {
		license = match.License
	}

	best := tierNone

	var phone string
	switch {
	case license != nil && license.Phone != "":
		phone = license.Phone
		best = max(best, tierLicensed)
	case prior != nil && prior.Phone != "":
		phone = prior.Phone
		best = max(best, tierExisting)
	case addressPhone != "":
		phone = addressPhone
		best = max(best, tierAddress)
	}

	// Contact person: the prior database outranks the permit data; the
	// permit-sourced person is part of the base record, not a contact
	// source, so it never affects the source tier.
	person := summary.ContactPerson
	if prior != nil && prior.ContactPerson != "" {
		person = prior.ContactPerson
		best = max(best, tierExisting)
	}

	var email string
	switch {
	case license != nil && license.Email != "":
		email = license.Email
		best = max(best, tierLicensed)
	case prior != nil && prior.Email != "":
		email = prior.Email
		best = max(best, tierExisting)
	default:
		// Last resort, email only: a phone is never generated.
		if generated := GenerateEmail(summary.RawName, person); generated != "" {
			email = generated
			best = max(best, tierGenerated)
		}
	}

	source := tierSource(best)
	return model.ResolvedContact{
		Phone:         phone,
		Email:         email,
		ContactPerson: person,
		Source:        source,
		Confidence:    source.Confidence(),
	}
}
