package analyzer

import (
	"errors"
	"testing"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBrandRepo struct {
	campaigns []*domain.AdCampaign
	err       error
}

func (s *stubBrandRepo) GetBrandByID(brandID string) (*domain.Brand, error) { return nil, nil }
func (s *stubBrandRepo) GetActiveBrands() ([]*domain.Brand, error)         { return nil, nil }
func (s *stubBrandRepo) GetActiveCampaigns(brandID string) ([]*domain.AdCampaign, error) {
	return s.campaigns, s.err
}

type stubMetricRepo struct {
	rows  []*domain.KeywordMetric
	since time.Time
}

func (s *stubMetricRepo) UpsertMetrics(metrics []*domain.KeywordMetric) error { return nil }
func (s *stubMetricRepo) GetMetricsSince(brandID string, campaignIDs []string, since time.Time) ([]*domain.KeywordMetric, error) {
	s.since = since
	return s.rows, nil
}

func day(offset int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func metricRow(id, keyword, campaignID string, date time.Time, impressions, clicks int64, spend float64, orders int64, sales float64) *domain.KeywordMetric {
	return &domain.KeywordMetric{
		ID:          id,
		BrandID:     "brand-1",
		Keyword:     keyword,
		MatchType:   domain.MatchBroad,
		Date:        date,
		CampaignID:  campaignID,
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       spend,
		Orders:      orders,
		Sales:       sales,
		Source:      domain.SourceAPI,
	}
}

func TestSnapshot_GroupsByKeywordCampaignMatchType(t *testing.T) {
	brandRepo := &stubBrandRepo{campaigns: []*domain.AdCampaign{
		{ID: "c1", BrandID: "brand-1", Name: "Discovery", TargetingType: "auto"},
	}}
	metricRepo := &stubMetricRepo{rows: []*domain.KeywordMetric{
		metricRow("m1", "water bottle", "c1", day(0), 100, 10, 5, 1, 20),
		metricRow("m2", "water bottle", "c1", day(1), 200, 20, 10, 2, 40),
		metricRow("m3", "straw", "c1", day(0), 50, 5, 2, 0, 0),
	}}

	agg := NewMetricAggregator(metricRepo, brandRepo)
	snap, err := agg.Snapshot("brand-1", 30)
	require.NoError(t, err)

	require.Len(t, snap.Keywords, 2)
	// Deterministic keyword order.
	straw, bottle := snap.Keywords[0], snap.Keywords[1]
	assert.Equal(t, "straw", straw.Keyword)
	assert.Equal(t, "water bottle", bottle.Keyword)

	assert.Equal(t, int64(300), bottle.TotalImpressions)
	assert.Equal(t, int64(30), bottle.TotalClicks)
	assert.Equal(t, 15.0, bottle.TotalSpend)
	assert.Equal(t, int64(3), bottle.TotalOrders)
	assert.Equal(t, 60.0, bottle.TotalSales)
	assert.Equal(t, 2, bottle.DataPoints)
	assert.Equal(t, 2, bottle.DaysSpan)
	assert.InDelta(t, 0.25, bottle.Acos, 1e-9)
	assert.InDelta(t, 4.0, bottle.Roas, 1e-9)
	// Latest row backs the metric reference.
	assert.Equal(t, "m2", bottle.LatestMetricID)
}

func TestSnapshot_DistinctDatesNotRows(t *testing.T) {
	brandRepo := &stubBrandRepo{campaigns: []*domain.AdCampaign{{ID: "c1", Name: "Discovery"}}}
	// Two rows on the same date count as one data point.
	metricRepo := &stubMetricRepo{rows: []*domain.KeywordMetric{
		metricRow("m1", "straw", "c1", day(0), 10, 1, 1, 0, 0),
		metricRow("m2", "straw", "c1", day(0), 10, 1, 1, 0, 0),
	}}

	agg := NewMetricAggregator(metricRepo, brandRepo)
	snap, err := agg.Snapshot("brand-1", 30)
	require.NoError(t, err)
	require.Len(t, snap.Keywords, 1)
	assert.Equal(t, 1, snap.Keywords[0].DataPoints)
}

func TestSnapshot_AcosSentinelWhenNoSales(t *testing.T) {
	brandRepo := &stubBrandRepo{campaigns: []*domain.AdCampaign{{ID: "c1", Name: "Discovery"}}}
	metricRepo := &stubMetricRepo{rows: []*domain.KeywordMetric{
		metricRow("m1", "dud keyword", "c1", day(0), 100, 10, 30, 0, 0),
	}}

	agg := NewMetricAggregator(metricRepo, brandRepo)
	snap, err := agg.Snapshot("brand-1", 30)
	require.NoError(t, err)
	require.Len(t, snap.Keywords, 1)
	// Worst-case sentinel, never a division by zero.
	assert.Equal(t, 1.0, snap.Keywords[0].Acos)
	assert.Equal(t, 0.0, snap.Keywords[0].Roas)
}

func TestSnapshot_NoCampaignsYieldsEmptySnapshot(t *testing.T) {
	agg := NewMetricAggregator(&stubMetricRepo{}, &stubBrandRepo{})
	snap, err := agg.Snapshot("brand-1", 30)
	require.NoError(t, err)
	assert.Empty(t, snap.Keywords)
	assert.Empty(t, snap.CampaignSums)
	assert.Empty(t, snap.Campaigns)
}

func TestSnapshot_CampaignResolutionErrorPropagates(t *testing.T) {
	agg := NewMetricAggregator(&stubMetricRepo{}, &stubBrandRepo{err: errors.New("db down")})
	_, err := agg.Snapshot("brand-1", 30)
	assert.Error(t, err)
}

func TestSnapshot_LookbackWindow(t *testing.T) {
	brandRepo := &stubBrandRepo{campaigns: []*domain.AdCampaign{{ID: "c1"}}}
	metricRepo := &stubMetricRepo{}

	agg := NewMetricAggregator(metricRepo, brandRepo)
	agg.now = func() time.Time { return day(30) }

	_, err := agg.Snapshot("brand-1", 30)
	require.NoError(t, err)
	assert.Equal(t, day(0), metricRepo.since)
}
