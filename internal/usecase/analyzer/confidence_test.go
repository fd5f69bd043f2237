package analyzer

import (
	"testing"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestConfidenceFor_Tiers(t *testing.T) {
	tests := []struct {
		name        string
		dataPoints  int
		impressions int64
		want        domain.ConfidenceTier
	}{
		{"high at exact boundary", 30, 1000, domain.ConfidenceHigh},
		{"high well above", 60, 50000, domain.ConfidenceHigh},
		{"medium at exact boundary", 14, 500, domain.ConfidenceMedium},
		{"data points high but impressions medium", 30, 999, domain.ConfidenceMedium},
		{"impressions high but data points medium", 29, 100000, domain.ConfidenceMedium},
		{"low just under medium data points", 13, 500, domain.ConfidenceLow},
		{"low just under medium impressions", 14, 499, domain.ConfidenceLow},
		{"low with nothing", 0, 0, domain.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceFor(ConfidenceInput{DataPoints: tt.dataPoints, Impressions: tt.impressions})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfidenceScore_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, ConfidenceScore(ConfidenceInput{}))

	// Saturates at 100 once both components cap out.
	max := ConfidenceScore(ConfidenceInput{DataPoints: 90, Impressions: 1_000_000})
	assert.Equal(t, 100.0, max)

	mid := ConfidenceScore(ConfidenceInput{DataPoints: 15, Impressions: 500})
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 100.0)
}

func TestConfidenceScore_Monotonic(t *testing.T) {
	base := ConfidenceInput{DataPoints: 10, Impressions: 200}
	score := ConfidenceScore(base)

	moreDays := base
	moreDays.DataPoints = 20
	assert.Greater(t, ConfidenceScore(moreDays), score)

	moreImpressions := base
	moreImpressions.Impressions = 800
	assert.Greater(t, ConfidenceScore(moreImpressions), score)
}

func TestHasMinimumDataQuality(t *testing.T) {
	assert.True(t, HasMinimumDataQuality(ConfidenceInput{DataPoints: 7, Impressions: 100}))
	assert.False(t, HasMinimumDataQuality(ConfidenceInput{DataPoints: 6, Impressions: 100}))
	assert.False(t, HasMinimumDataQuality(ConfidenceInput{DataPoints: 7, Impressions: 99}))
}
