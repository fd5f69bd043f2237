package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NilOverridesKeepDefaults(t *testing.T) {
	defaults := DefaultThresholds()
	assert.Equal(t, defaults, defaults.Merge(nil))
	assert.Equal(t, defaults, defaults.Merge(&ThresholdOverrides{}))
}

func TestMerge_SetFieldsWinUnsetFieldsKeepDefaults(t *testing.T) {
	maxAcos := 0.30
	minClicks := int64(75)
	merged := DefaultThresholds().Merge(&ThresholdOverrides{
		Graduation: &GraduationOverrides{MaxAcos: &maxAcos},
		Negative:   &NegativeOverrides{MinClicks: &minClicks},
	})

	assert.Equal(t, 0.30, merged.Graduation.MaxAcos)
	assert.Equal(t, int64(75), merged.Negative.MinClicks)

	// Untouched fields stay at their defaults.
	assert.Equal(t, int64(5), merged.Graduation.MinConversions)
	assert.Equal(t, 25.0, merged.Negative.MinSpend)
	assert.Equal(t, 1.5, merged.Budget.MinRoas)
}

func TestMerge_ZeroIsAValidOverride(t *testing.T) {
	// An explicit zero is distinct from "not set".
	zero := 0.0
	merged := DefaultThresholds().Merge(&ThresholdOverrides{
		Graduation: &GraduationOverrides{MinSpend: &zero},
	})
	assert.Equal(t, 0.0, merged.Graduation.MinSpend)
}

func TestMerge_DoesNotMutateReceiver(t *testing.T) {
	defaults := DefaultThresholds()
	maxAcos := 0.99
	_ = defaults.Merge(&ThresholdOverrides{Graduation: &GraduationOverrides{MaxAcos: &maxAcos}})
	assert.Equal(t, 0.25, defaults.Graduation.MaxAcos)
}

func TestThresholdOverrides_RoundTripsThroughJSON(t *testing.T) {
	// The overrides blob is stored as JSON in company settings; absent
	// fields must come back as nil, not zero.
	maxAcos := 0.30
	in := ThresholdOverrides{Graduation: &GraduationOverrides{MaxAcos: &maxAcos}}

	blob, err := json.Marshal(in)
	require.NoError(t, err)

	var out ThresholdOverrides
	require.NoError(t, json.Unmarshal(blob, &out))
	require.NotNil(t, out.Graduation)
	require.NotNil(t, out.Graduation.MaxAcos)
	assert.Equal(t, 0.30, *out.Graduation.MaxAcos)
	assert.Nil(t, out.Graduation.MinConversions)
	assert.Nil(t, out.Negative)
	assert.Nil(t, out.Budget)
}
