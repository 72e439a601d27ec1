package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/success-predictor/internal/types"
)

func TestPrintFeatureVector(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	fv := &types.FeatureVector{
		UserID:   "user-1",
		JobID:    "job-1",
		Industry: "technology",
	}
	fv.CVFeatures.WordCount = 320
	fv.CVFeatures.SkillCount = 8
	fv.MatchingFeatures.SkillMatch = 0.75

	p.PrintFeatureVector(fv)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED FEATURES")
	assert.Contains(t, output, "user-1")
	assert.Contains(t, output, "technology")
	assert.Contains(t, output, "320 words")
	assert.Contains(t, output, "skills 0.75")
}

func TestPrintFeatureVector_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFeatureVector(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPrediction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	pred := &types.SuccessPrediction{
		InterviewProbability: 0.42,
		OfferProbability:     0.18,
		HireProbability:      0.144,
		CompetitivenessScore: 61,
	}
	pred.SalaryPrediction.Median = 90000
	pred.TimeToHire.MedianDays = 28
	pred.Confidence.Overall = 0.7
	pred.ModelMetadata.ModelVersion = "heuristic-2026.1"

	p.PrintPrediction(pred)
	output := buf.String()

	assert.Contains(t, output, "SUCCESS PREDICTION")
	assert.Contains(t, output, "42.0%")
	assert.Contains(t, output, "18.0%")
	assert.Contains(t, output, "90000")
	assert.Contains(t, output, "heuristic-2026.1")
}

func TestPrintRecommendationsEmptyShowsPositiveBanner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)

	assert.Contains(t, buf.String(), "NO RECOMMENDATIONS")
}

func TestPrintRecommendationsTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := make([]types.Recommendation, 7)
	for i := range recs {
		recs[i] = types.Recommendation{Priority: i + 1, Category: "cv", Message: "Improve something.", Impact: "low"}
	}

	p.PrintRecommendations(recs)

	assert.Contains(t, buf.String(), "and 2 more")
}

func TestPrintFeatureImportanceOrdersByWeight(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFeatureImportance(map[string]float64{
		"skill_match":      0.40,
		"education_match":  0.10,
		"title_similarity": 0.15,
	})
	output := buf.String()

	assert.Contains(t, output, "FEATURE IMPORTANCE")
	assert.Less(t, strings.Index(output, "skill_match"), strings.Index(output, "title_similarity"))
	assert.Less(t, strings.Index(output, "title_similarity"), strings.Index(output, "education_match"))
}
