package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/success-predictor/internal/llm"
	"github.com/jonathan/success-predictor/internal/types"
)

func strongVector() *types.FeatureVector {
	return &types.FeatureVector{
		CVFeatures: types.CVFeatures{
			WordCount:        400,
			ExperienceCount:  3,
			AchievementCount: 4,
			ReadabilityScore: 80,
			KeywordDensity:   0.05,
		},
		MatchingFeatures: types.MatchingFeatures{
			SkillMatch:      0.8,
			EducationMatch:  0.9,
			SalaryAlignment: 0.9,
		},
		BehaviorFeatures: types.BehaviorFeatures{ApplicationTiming: 2},
	}
}

func TestGenerateStrongCandidateGetsNoAdvice(t *testing.T) {
	recs := Generate(strongVector(), &types.CV{Certifications: []string{"AWS SAA"}})

	assert.Empty(t, recs)
}

func TestGenerateOrdersByImpactAndNumbersPriorities(t *testing.T) {
	fv := strongVector()
	fv.MatchingFeatures.SkillMatch = 0.2     // heaviest rule
	fv.BehaviorFeatures.ApplicationTiming = 20
	fv.CVFeatures.ReadabilityScore = 30

	recs := Generate(fv, &types.CV{})

	require.Len(t, recs, 3)
	assert.Equal(t, "skills", recs[0].Category)
	assert.Equal(t, "cv", recs[1].Category)
	assert.Equal(t, "timing", recs[2].Category)
	for i, r := range recs {
		assert.Equal(t, i+1, r.Priority)
	}
}

func TestGenerateCapsListLength(t *testing.T) {
	fv := &types.FeatureVector{
		CVFeatures: types.CVFeatures{
			WordCount:        50,
			ExperienceCount:  2,
			AchievementCount: 0,
			ReadabilityScore: 20,
		},
		MatchingFeatures: types.MatchingFeatures{
			SkillMatch:      0.1,
			EducationMatch:  0.2,
			SalaryAlignment: 0.1,
		},
		BehaviorFeatures: types.BehaviorFeatures{ApplicationTiming: 30},
		DerivedFeatures:  types.DerivedFeatures{UnderQualification: 0.8},
	}

	recs := Generate(fv, &types.CV{})

	assert.Len(t, recs, maxRecommendations)
}

func TestGenerateNilCVSkipsCVDependentRules(t *testing.T) {
	fv := strongVector()
	fv.MatchingFeatures.EducationMatch = 0.2

	recs := Generate(fv, nil)

	for _, r := range recs {
		assert.NotEqual(t, "education", r.Category)
	}
}

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func sampleRecs() []types.Recommendation {
	return []types.Recommendation{
		{Priority: 1, Category: "skills", Message: "Add the posting's skills.", Impact: "high"},
		{Priority: 2, Category: "cv", Message: "Expand your CV.", Impact: "medium"},
	}
}

func TestEnhanceRewritesMessagesOnly(t *testing.T) {
	e := NewEnhancer(&stubClient{response: `["Better skills advice.", "Better CV advice."]`})

	out := e.Enhance(context.Background(), sampleRecs(), "engineer")

	require.Len(t, out, 2)
	assert.Equal(t, "Better skills advice.", out[0].Message)
	assert.Equal(t, "Better CV advice.", out[1].Message)
	assert.Equal(t, 1, out[0].Priority)
	assert.Equal(t, "skills", out[0].Category)
	assert.Equal(t, "high", out[0].Impact)
}

func TestEnhanceReturnsInputOnError(t *testing.T) {
	e := NewEnhancer(&stubClient{err: errors.New("quota exceeded")})

	in := sampleRecs()
	out := e.Enhance(context.Background(), in, "")

	assert.Equal(t, in, out)
}

func TestEnhanceReturnsInputOnLengthMismatch(t *testing.T) {
	e := NewEnhancer(&stubClient{response: `["only one"]`})

	in := sampleRecs()
	out := e.Enhance(context.Background(), in, "")

	assert.Equal(t, in, out)
}

func TestEnhanceWithoutClientIsIdentity(t *testing.T) {
	e := NewEnhancer(nil)

	in := sampleRecs()
	out := e.Enhance(context.Background(), in, "")

	assert.Equal(t, in, out)
}
