package analyzer

import (
	"math"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

// ConfidenceInput carries the data-volume signals behind a candidate.
// DaysSpan is recorded for reporting but does not influence the tier.
type ConfidenceInput struct {
	DataPoints  int
	Impressions int64
	DaysSpan    int
}

const (
	highMinDataPoints   = 30
	highMinImpressions  = 1000
	mediumMinDataPoints = 14
	mediumMinImpressions = 500

	minQualityDataPoints  = 7
	minQualityImpressions = 100
)

// ConfidenceFor maps data volume to a discrete tier.
func ConfidenceFor(in ConfidenceInput) domain.ConfidenceTier {
	if in.DataPoints >= highMinDataPoints && in.Impressions >= highMinImpressions {
		return domain.ConfidenceHigh
	}
	if in.DataPoints >= mediumMinDataPoints && in.Impressions >= mediumMinImpressions {
		return domain.ConfidenceMedium
	}
	return domain.ConfidenceLow
}

// ConfidenceScore is a continuous 0-100 ranking signal: up to 50 points
// linear in dataPoints/30, up to 50 points log10-scaled in impressions/1000.
// Monotonic with the tiers but finer-grained.
func ConfidenceScore(in ConfidenceInput) float64 {
	dataPart := 50 * float64(in.DataPoints) / float64(highMinDataPoints)
	if dataPart > 50 {
		dataPart = 50
	}
	var impPart float64
	if in.Impressions > 0 {
		impPart = 50 * math.Log10(float64(in.Impressions)+1) / math.Log10(float64(highMinImpressions)+1)
		if impPart > 50 {
			impPart = 50
		}
	}
	return dataPart + impPart
}

// HasMinimumDataQuality reports whether a candidate has enough data to be
// worth surfacing at all. The finders intentionally do not enforce this;
// thin candidates still qualify and come out with LOW confidence.
func HasMinimumDataQuality(in ConfidenceInput) bool {
	return in.DataPoints >= minQualityDataPoints && in.Impressions >= minQualityImpressions
}
