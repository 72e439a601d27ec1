package fallback

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/success-predictor/internal/types"
)

// MinimalStrategy is the last pipeline tier: pure arithmetic over three
// signals (experience entries, skill count, has-education) with fixed base
// rates. No I/O, no external calls, no cache access, no parsing — it cannot
// fail, which makes the chain's FAILED state unreachable by construction.
type MinimalStrategy struct{}

// NewMinimalStrategy creates the minimal tier.
func NewMinimalStrategy() *MinimalStrategy {
	return &MinimalStrategy{}
}

// Name implements Strategy.
func (s *MinimalStrategy) Name() string { return "minimal" }

// minimalConfidence marks predictions produced by this tier.
const minimalConfidence = 0.3

// Predict implements Strategy. The error is always nil.
func (s *MinimalStrategy) Predict(_ context.Context, req *types.PredictionRequest) (*types.SuccessPrediction, error) {
	return minimalPrediction(req), nil
}

// minimalPrediction builds the guaranteed-safe prediction.
func minimalPrediction(req *types.PredictionRequest) *types.SuccessPrediction {
	experienceEntries := 0.0
	skillCount := 0.0
	hasEducation := false
	if req.CV != nil {
		experienceEntries = float64(len(req.CV.Experience))
		skillCount = float64(len(req.CV.Skills))
		hasEducation = len(req.CV.Education) > 0
	}

	// Entries approximate years at two years per position.
	years := experienceEntries * 2

	interview := 0.12 + math.Min(0.08, years*0.008) + math.Min(0.05, skillCount*0.005)
	offer := 0.04 + math.Min(0.04, years*0.004) + math.Min(0.02, skillCount*0.002)
	if hasEducation {
		interview += 0.03
		offer += 0.01
	}

	salaryMedian := 60000.0
	medianDays := 30.0

	return &types.SuccessPrediction{
		PredictionID:         uuid.NewString(),
		UserID:               req.UserID,
		JobID:                req.JobID,
		Timestamp:            time.Now(),
		InterviewProbability: interview,
		OfferProbability:     offer,
		HireProbability:      offer * 0.8,
		SalaryPrediction: types.SalaryPrediction{
			Min:    salaryMedian * 0.85,
			Median: salaryMedian,
			Max:    salaryMedian * 1.2,
			ConfidenceInterval: types.ConfidenceInterval{
				Lower: salaryMedian * 0.7,
				Upper: salaryMedian * 1.4,
			},
			IndustryBenchmark: salaryMedian,
		},
		TimeToHire: types.TimeToHire{
			MinDays:    medianDays * 0.6,
			MedianDays: medianDays,
			MaxDays:    medianDays * 1.6,
			Phases: types.HiringPhases{
				Application: medianDays * 0.18,
				Screening:   medianDays * 0.25,
				Interviews:  medianDays * 0.32,
				Decision:    medianDays * 0.15,
				Negotiation: medianDays * 0.10,
			},
		},
		CompetitivenessScore: math.Min(100, 25+years*2+skillCount),
		Confidence: types.Confidence{
			Overall:    minimalConfidence,
			Interview:  minimalConfidence,
			Offer:      minimalConfidence,
			Salary:     minimalConfidence,
			TimeToHire: minimalConfidence,
		},
		Recommendations: []types.Recommendation{
			{
				Priority: 1,
				Category: "cv",
				Message:  "Provide a fuller CV so we can give a more precise estimate.",
				Impact:   "high",
			},
		},
		ModelMetadata: types.ModelMetadata{
			ModelVersion: "minimal-fallback-v1",
			FeaturesUsed: []string{"experience_entries", "skill_count", "has_education"},
		},
	}
}
