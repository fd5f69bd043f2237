package recommendation

import (
	"errors"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/analyzer"
)

// In-memory doubles for the repository interfaces. Enough behavior to drive
// the usecase; no query features beyond what the tests exercise.

type fakeRecRepo struct {
	recs      map[string]*domain.Recommendation
	changeLog []*domain.ChangeLogEntry
	createErr error
	findErr   error
}

func newFakeRecRepo() *fakeRecRepo {
	return &fakeRecRepo{recs: make(map[string]*domain.Recommendation)}
}

func (f *fakeRecRepo) CreateRecommendation(rec *domain.Recommendation) error {
	if f.createErr != nil {
		return f.createErr
	}
	clone := *rec
	f.recs[rec.ID] = &clone
	return nil
}

func (f *fakeRecRepo) GetRecommendationByID(recommendationID string) (*domain.Recommendation, error) {
	rec, ok := f.recs[recommendationID]
	if !ok {
		return nil, domain.ErrRecommendationNotFound
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeRecRepo) FindPendingByKey(key domain.DedupKey) (*domain.Recommendation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, rec := range f.recs {
		if rec.Status != domain.StatusPending {
			continue
		}
		if rec.BrandID != key.BrandID || rec.Type != key.Type {
			continue
		}
		if key.Keyword != "" && rec.Keyword != key.Keyword {
			continue
		}
		if key.CampaignID != "" && (rec.CampaignID == nil || *rec.CampaignID != key.CampaignID) {
			continue
		}
		clone := *rec
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeRecRepo) ApplyAction(rec *domain.Recommendation, entry *domain.ChangeLogEntry) error {
	stored, ok := f.recs[rec.ID]
	if !ok {
		return domain.ErrRecommendationNotFound
	}
	stored.Status = rec.Status
	stored.SnoozedUntil = rec.SnoozedUntil
	stored.UpdatedAt = rec.UpdatedAt
	clone := *entry
	f.changeLog = append(f.changeLog, &clone)
	return nil
}

func (f *fakeRecRepo) GetBrandRecommendations(brandID string, filter domain.GetRecommendationsFilter) ([]*domain.Recommendation, int64, error) {
	var out []*domain.Recommendation
	for _, rec := range f.recs {
		if rec.BrandID != brandID {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && rec.Type != *filter.Type {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecRepo) GetBrandSummary(brandID string) (*domain.RecommendationSummary, error) {
	summary := &domain.RecommendationSummary{
		ByStatus:     make(map[domain.RecommendationStatus]int64),
		ByType:       make(map[domain.RecommendationType]int64),
		ByConfidence: make(map[domain.ConfidenceTier]int64),
	}
	for _, rec := range f.recs {
		if rec.BrandID != brandID {
			continue
		}
		summary.Total++
		summary.ByStatus[rec.Status]++
		summary.ByType[rec.Type]++
		summary.ByConfidence[rec.Confidence]++
	}
	return summary, nil
}

func (f *fakeRecRepo) pendingCount() int {
	n := 0
	for _, rec := range f.recs {
		if rec.Status == domain.StatusPending {
			n++
		}
	}
	return n
}

type fakeBrandRepo struct {
	brands    map[string]*domain.Brand
	campaigns map[string][]*domain.AdCampaign
	listErr   error
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{
		brands:    make(map[string]*domain.Brand),
		campaigns: make(map[string][]*domain.AdCampaign),
	}
}

func (f *fakeBrandRepo) GetBrandByID(brandID string) (*domain.Brand, error) {
	brand, ok := f.brands[brandID]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	return brand, nil
}

func (f *fakeBrandRepo) GetActiveBrands() ([]*domain.Brand, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Brand
	for _, b := range f.brands {
		if b.Status == domain.BrandStatusActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBrandRepo) GetActiveCampaigns(brandID string) ([]*domain.AdCampaign, error) {
	return f.campaigns[brandID], nil
}

type fakeSettingsRepo struct {
	overrides map[string]*domain.ThresholdOverrides
	err       error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{overrides: make(map[string]*domain.ThresholdOverrides)}
}

func (f *fakeSettingsRepo) GetThresholdOverrides(companyID string) (*domain.ThresholdOverrides, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.overrides[companyID], nil
}

func (f *fakeSettingsRepo) SaveThresholdOverrides(companyID string, overrides *domain.ThresholdOverrides) error {
	f.overrides[companyID] = overrides
	return nil
}

type fakeMetricRepo struct {
	rows []*domain.KeywordMetric
	err  error
}

func (f *fakeMetricRepo) UpsertMetrics(metrics []*domain.KeywordMetric) error { return nil }
func (f *fakeMetricRepo) GetMetricsSince(brandID string, campaignIDs []string, since time.Time) ([]*domain.KeywordMetric, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.KeywordMetric
	for _, m := range f.rows {
		if m.BrandID == brandID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fixture struct {
	uc           *DefaultRecommendationUsecase
	recRepo      *fakeRecRepo
	brandRepo    *fakeBrandRepo
	settingsRepo *fakeSettingsRepo
	metricRepo   *fakeMetricRepo
}

var errBoom = errors.New("boom")

func newFixture(scheduler SchedulerSettings) *fixture {
	recRepo := newFakeRecRepo()
	brandRepo := newFakeBrandRepo()
	settingsRepo := newFakeSettingsRepo()
	metricRepo := &fakeMetricRepo{}

	uc := NewDefaultRecommendationUsecase(
		recRepo,
		brandRepo,
		settingsRepo,
		analyzer.NewMetricAggregator(metricRepo, brandRepo),
		nil,
		nil,
		scheduler,
	)
	return &fixture{
		uc:           uc,
		recRepo:      recRepo,
		brandRepo:    brandRepo,
		settingsRepo: settingsRepo,
		metricRepo:   metricRepo,
	}
}

func (fx *fixture) withBrand(id, companyID string) *fixture {
	fx.brandRepo.brands[id] = &domain.Brand{
		ID: id, CompanyID: companyID, Name: "Brand " + id, Status: domain.BrandStatusActive,
	}
	return fx
}
