package recommendation

import (
	"testing"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actionNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func seedPending(fx *fixture, id, brandID string) {
	fx.recRepo.recs[id] = &domain.Recommendation{
		ID:          id,
		BrandID:     brandID,
		Type:        domain.TypeNegativeKeyword,
		Status:      domain.StatusPending,
		Confidence:  domain.ConfidenceMedium,
		Keyword:     "dud keyword",
		GeneratedAt: actionNow.AddDate(0, 0, -1),
	}
}

func actionFixture() *fixture {
	fx := newFixture(SchedulerSettings{}).withBrand("brand-1", "co-1")
	fx.uc.now = func() time.Time { return actionNow }
	seedPending(fx, "rec-1", "brand-1")
	return fx
}

func TestActionRecommendation_Accept(t *testing.T) {
	fx := actionFixture()

	res, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1",
		BrandID:          "brand-1",
		Action:           domain.ActionAccept,
		Reason:           "looks right",
		UserID:           "user-7",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAccepted, res.Recommendation.Status)
	assert.Nil(t, res.Recommendation.SnoozedUntil)

	stored, _ := fx.recRepo.GetRecommendationByID("rec-1")
	assert.Equal(t, domain.StatusAccepted, stored.Status)

	// Exactly one audit entry, carrying both snapshots.
	require.Len(t, fx.recRepo.changeLog, 1)
	entry := fx.recRepo.changeLog[0]
	assert.Equal(t, "rec-1", entry.RecommendationID)
	assert.Equal(t, domain.ActionAccept, entry.Action)
	assert.Equal(t, "looks right", entry.Reason)
	assert.Equal(t, "user-7", entry.UserID)
	assert.Equal(t, domain.StatusPending, entry.Before.Status)
	assert.Equal(t, domain.StatusAccepted, entry.After.Status)
	assert.NotEmpty(t, entry.ID)
}

func TestActionRecommendation_AcceptedIsFinal(t *testing.T) {
	fx := actionFixture()

	_, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionAccept,
	})
	require.NoError(t, err)

	_, err = fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionReject,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyActioned)
	// The failed attempt leaves no audit trace.
	assert.Len(t, fx.recRepo.changeLog, 1)
}

func TestActionRecommendation_ForeignBrandLooksLikeMissing(t *testing.T) {
	fx := actionFixture()

	_, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-2", Action: domain.ActionAccept,
	})
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
}

func TestActionRecommendation_UnknownID(t *testing.T) {
	fx := actionFixture()

	_, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "ghost", BrandID: "brand-1", Action: domain.ActionAccept,
	})
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
}

func TestActionRecommendation_InvalidAction(t *testing.T) {
	fx := actionFixture()

	_, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: "ARCHIVED",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestActionRecommendation_SnoozeDefaultsToSevenDays(t *testing.T) {
	fx := actionFixture()

	res, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionSnooze,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSnoozed, res.Recommendation.Status)
	require.NotNil(t, res.Recommendation.SnoozedUntil)
	assert.Equal(t, actionNow.AddDate(0, 0, 7), *res.Recommendation.SnoozedUntil)
	require.NotNil(t, fx.recRepo.changeLog[0].After.SnoozedUntil)
}

func TestActionRecommendation_SnoozeHonorsRequestedDays(t *testing.T) {
	fx := actionFixture()

	res, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionSnooze, SnoozeDays: 21,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Recommendation.SnoozedUntil)
	assert.Equal(t, actionNow.AddDate(0, 0, 21), *res.Recommendation.SnoozedUntil)
}

func TestActionRecommendation_ActiveSnoozeBlocksFurtherActions(t *testing.T) {
	fx := actionFixture()

	_, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionSnooze,
	})
	require.NoError(t, err)

	_, err = fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionAccept,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyActioned)
}

func TestActionRecommendation_ExpiredSnoozeIsActionableAgain(t *testing.T) {
	fx := actionFixture()

	_, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionSnooze,
	})
	require.NoError(t, err)

	// Eight days later the snooze has lapsed.
	fx.uc.now = func() time.Time { return actionNow.AddDate(0, 0, 8) }

	res, err := fx.uc.ActionRecommendation(ActionInput{
		RecommendationID: "rec-1", BrandID: "brand-1", Action: domain.ActionAccept,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, res.Recommendation.Status)
	assert.Nil(t, res.Recommendation.SnoozedUntil)
	assert.Len(t, fx.recRepo.changeLog, 2)
}
