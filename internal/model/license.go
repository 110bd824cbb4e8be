package model

// LicenseRecord is one entity extracted from the professional-license
// directory. Company is kept exactly as extracted; normalization happens
// only at comparison time. Records lacking both phone and email are
// discarded at extraction since they cannot contribute contact data.
type LicenseRecord struct {
	Company string `json:"license_company"`
	Phone   string `json:"license_phone,omitempty"`
	Email   string `json:"license_email,omitempty"`
}

// HasContact reports whether the record carries at least one contact field.
func (r LicenseRecord) HasContact() bool {
	return r.Phone != "" || r.Email != ""
}
