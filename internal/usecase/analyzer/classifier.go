package analyzer

import "strings"

type CampaignClass string

const (
	ClassDiscovery  CampaignClass = "discovery"
	ClassAccelerate CampaignClass = "accelerate"
	ClassUnknown    CampaignClass = "unknown"
)

// Accelerate patterns win over discovery on overlap: a name that opts into
// both is treated as deliberately accelerate-style naming.
var (
	acceleratePatterns = []string{"accelerate", "exact", "scale", "performance", "convert"}
	discoveryPatterns  = []string{"discovery", "research", "explore", "test", "broad"}
)

// ClassifyCampaign buckets a campaign into discovery vs accelerate from its
// name, falling back to the targeting type. Total function, never errors.
func ClassifyCampaign(name, targetingType string) CampaignClass {
	lower := strings.ToLower(name)
	for _, p := range acceleratePatterns {
		if strings.Contains(lower, p) {
			return ClassAccelerate
		}
	}
	for _, p := range discoveryPatterns {
		if strings.Contains(lower, p) {
			return ClassDiscovery
		}
	}
	if strings.EqualFold(targetingType, "auto") {
		return ClassDiscovery
	}
	return ClassUnknown
}
