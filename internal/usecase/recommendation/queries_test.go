package recommendation

import (
	"testing"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecommendationsForBrand_PaginationDefaults(t *testing.T) {
	fx := newFixture(SchedulerSettings{})
	seedPending(fx, "rec-1", "brand-1")
	seedPending(fx, "rec-2", "brand-1")
	seedPending(fx, "rec-3", "brand-2")

	page, err := fx.uc.GetRecommendationsForBrand("brand-1", domain.GetRecommendationsFilter{})
	require.NoError(t, err)

	assert.Len(t, page.Recommendations, 2)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 20, page.Pagination.ItemsPerPage)
	assert.Equal(t, int64(2), page.Pagination.TotalItems)
	assert.Equal(t, int64(1), page.Pagination.TotalPages)
}

func TestGetRecommendationSummary_CountsByDimension(t *testing.T) {
	fx := newFixture(SchedulerSettings{})
	seedPending(fx, "rec-1", "brand-1")
	seedPending(fx, "rec-2", "brand-1")

	summary, err := fx.uc.GetRecommendationSummary("brand-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Total)
	assert.Equal(t, int64(2), summary.ByStatus[domain.StatusPending])
	assert.Equal(t, int64(2), summary.ByType[domain.TypeNegativeKeyword])
}
