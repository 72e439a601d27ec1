package fallback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/success-predictor/internal/features"
	"github.com/jonathan/success-predictor/internal/types"
)

// HeuristicStrategy is the second pipeline tier: an independent computation
// over raw CV fields and job text that bypasses the feature vector entirely,
// so a feature-extraction defect cannot propagate into it.
type HeuristicStrategy struct{}

// NewHeuristicStrategy creates the full-heuristic tier.
func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{}
}

// Name implements Strategy.
func (s *HeuristicStrategy) Name() string { return "heuristic_full" }

// heuristicConfidence marks predictions produced by this tier.
const heuristicConfidence = 0.6

// Predict computes a complete prediction from raw request fields: keyword
// overlap approximates skill match, experience comes from summed date ranges,
// and education from a degree-rank lookup.
func (s *HeuristicStrategy) Predict(_ context.Context, req *types.PredictionRequest) (*types.SuccessPrediction, error) {
	if req.CV == nil {
		return nil, fmt.Errorf("heuristic tier needs a CV")
	}

	skillOverlap := skillKeywordOverlap(req.CV.Skills, req.JobDescription)
	years := features.TotalExperienceYears(req.CV)
	eduScore := educationScore(req.CV)

	tenure := years / 15
	if tenure > 1 {
		tenure = 1
	}

	interview := clamp(0.10+skillOverlap*0.35+tenure*0.20+eduScore*0.10, 0.01, 0.95)
	offer := clamp(0.05+skillOverlap*0.20+tenure*0.12+eduScore*0.08, 0.005, 0.85)

	salaryMedian := 65000 * (1 + years*0.06) * (0.9 + eduScore*0.3)
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
			IndustryBenchmark: 65000,
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
		CompetitivenessScore: clamp(30+skillOverlap*40+tenure*20+eduScore*10, 0, 100),
		Confidence: types.Confidence{
			Overall:    heuristicConfidence,
			Interview:  heuristicConfidence,
			Offer:      heuristicConfidence,
			Salary:     heuristicConfidence,
			TimeToHire: heuristicConfidence,
		},
		Recommendations: heuristicRecommendations(skillOverlap, years, eduScore),
		ModelMetadata: types.ModelMetadata{
			ModelVersion: "heuristic-fallback-v1",
			FeaturesUsed: []string{"skill_keyword_overlap", "experience_years", "education_level"},
		},
	}, nil
}

// skillKeywordOverlap is the tier's own skill-match approximation: the
// fraction of CV skills whose words all appear in the job text.
func skillKeywordOverlap(skills []string, jobDescription string) float64 {
	if len(skills) == 0 || jobDescription == "" {
		return 0
	}
	jobLower := strings.ToLower(jobDescription)
	matches := 0
	for _, skill := range skills {
		if strings.Contains(jobLower, strings.ToLower(skill)) {
			matches++
		}
	}
	return float64(matches) / float64(len(skills))
}

// educationScore maps the best degree on the CV to [0,1].
func educationScore(cv *types.CV) float64 {
	return float64(features.HighestDegreeRank(cv)) / 4
}

func heuristicRecommendations(skillOverlap, years, eduScore float64) []types.Recommendation {
	var recs []types.Recommendation
	priority := 1

	if skillOverlap < 0.4 {
		recs = append(recs, types.Recommendation{
			Priority: priority,
			Category: "skills",
			Message:  "Add the skills the job posting names explicitly; few of your listed skills appear in it.",
			Impact:   "high",
		})
		priority++
	}
	if years < 2 {
		recs = append(recs, types.Recommendation{
			Priority: priority,
			Category: "experience",
			Message:  "Describe projects or internships to strengthen a short experience history.",
			Impact:   "medium",
		})
		priority++
	}
	if eduScore == 0 {
		recs = append(recs, types.Recommendation{
			Priority: priority,
			Category: "education",
			Message:  "List your highest completed education, including in-progress degrees.",
			Impact:   "low",
		})
	}
	return recs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
