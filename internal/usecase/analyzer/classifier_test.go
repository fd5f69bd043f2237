package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCampaign(t *testing.T) {
	tests := []struct {
		name          string
		campaignName  string
		targetingType string
		want          CampaignClass
	}{
		{"discovery pattern", "Brand A - Discovery Broad", "manual", ClassDiscovery},
		{"research pattern", "Keyword Research Q3", "manual", ClassDiscovery},
		{"accelerate pattern", "Accelerate - Top Sellers", "manual", ClassAccelerate},
		{"exact pattern", "Exact Match Winners", "manual", ClassAccelerate},
		{"case insensitive", "SCALE WINNERS", "manual", ClassAccelerate},
		{"accelerate wins overlap", "Exact Test Campaign", "manual", ClassAccelerate},
		{"auto targeting fallback", "Main Campaign", "auto", ClassDiscovery},
		{"auto fallback is case insensitive", "Main Campaign", "AUTO", ClassDiscovery},
		{"no signal at all", "Main Campaign", "manual", ClassUnknown},
		{"empty everything", "", "", ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCampaign(tt.campaignName, tt.targetingType))
		})
	}
}
