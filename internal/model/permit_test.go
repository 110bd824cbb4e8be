package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		days int
		want ActivityTier
	}{
		{-1, TierUnknown},
		{0, TierVeryActive},
		{30, TierVeryActive},
		{31, TierActive},
		{90, TierActive},
		{91, TierModerate},
		{180, TierModerate},
		{181, TierLow},
		{365, TierLow},
		{366, TierInactive},
		{2000, TierInactive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyActivity(tt.days), "days=%d", tt.days)
	}
}

func TestActivityTierLabel(t *testing.T) {
	assert.Equal(t, "Very Active (< 30 days)", TierVeryActive.Label())
	assert.Equal(t, "Inactive (> 1 year)", TierInactive.Label())
	assert.Equal(t, "Unknown", TierUnknown.Label())
	assert.Equal(t, "Unknown", ActivityTier("bogus").Label())
}

func TestSourceConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, SourceLicensed.Confidence())
	assert.Equal(t, ConfidenceHigh, SourceExisting.Confidence())
	assert.Equal(t, ConfidenceMedium, SourceAddress.Confidence())
	assert.Equal(t, ConfidenceLow, SourceGenerated.Confidence())
	assert.Equal(t, ConfidenceNone, SourceNone.Confidence())
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "Licensed Data", SourceLicensed.Label())
	assert.Equal(t, "None", SourceNone.Label())
}

func TestLicenseHasContact(t *testing.T) {
	assert.False(t, LicenseRecord{Company: "ACME"}.HasContact())
	assert.True(t, LicenseRecord{Company: "ACME", Phone: "612-555-1212"}.HasContact())
	assert.True(t, LicenseRecord{Company: "ACME", Email: "a@acme.com"}.HasContact())
}
