package predictors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/success-predictor/internal/types"
)

func TestSalaryHeuristicScalesIndustryBase(t *testing.T) {
	p := NewSalaryPredictor(nil)

	fv := &types.FeatureVector{Industry: "technology"}
	fv.CVFeatures.ExperienceYears = 5
	fv.CVFeatures.EducationLevel = 2
	fv.CVFeatures.SkillCount = 10

	r, err := p.Predict(context.Background(), fv)

	require.NoError(t, err)
	assert.False(t, r.Remote)
	// 95000 * (1 + 5*0.08) * 1.00 * (1 + 10*0.02) = 159600
	assert.InDelta(t, 159600, r.Prediction.Median, 0.01)
	assert.InDelta(t, 159600*0.85, r.Prediction.Min, 0.01)
	assert.InDelta(t, 159600*1.20, r.Prediction.Max, 0.01)
	assert.InDelta(t, 159600*0.75, r.Prediction.ConfidenceInterval.Lower, 0.01)
	assert.InDelta(t, 159600*1.35, r.Prediction.ConfidenceInterval.Upper, 0.01)
	assert.Equal(t, 95000.0, r.Prediction.IndustryBenchmark)
}

func TestSalaryHeuristicUnknownIndustryUsesDefault(t *testing.T) {
	p := NewSalaryPredictor(nil)

	r, err := p.Predict(context.Background(), &types.FeatureVector{Industry: "basket weaving"})

	require.NoError(t, err)
	// 70000 * 1.0 * 0.85 (no degree) * 1.0
	assert.InDelta(t, 59500, r.Prediction.Median, 0.01)
	assert.Equal(t, 70000.0, r.Prediction.IndustryBenchmark)
}

func TestSalaryHeuristicSkillBonusCaps(t *testing.T) {
	p := NewSalaryPredictor(nil)

	fifteen := &types.FeatureVector{Industry: "default"}
	fifteen.CVFeatures.EducationLevel = 2
	fifteen.CVFeatures.SkillCount = 15
	fifty := &types.FeatureVector{Industry: "default"}
	fifty.CVFeatures.EducationLevel = 2
	fifty.CVFeatures.SkillCount = 50

	r15, err := p.Predict(context.Background(), fifteen)
	require.NoError(t, err)
	r50, err := p.Predict(context.Background(), fifty)
	require.NoError(t, err)

	// Both hit the +30% cap.
	assert.Equal(t, r15.Prediction.Median, r50.Prediction.Median)
	assert.InDelta(t, 70000*1.3, r15.Prediction.Median, 0.01)
}

func TestSalaryHeuristicEducationMultiplier(t *testing.T) {
	p := NewSalaryPredictor(nil)

	phd := &types.FeatureVector{Industry: "finance"}
	phd.CVFeatures.EducationLevel = 4

	r, err := p.Predict(context.Background(), phd)

	require.NoError(t, err)
	assert.InDelta(t, 90000*1.25, r.Prediction.Median, 0.01)
}
