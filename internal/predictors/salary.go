package predictors

import (
	"context"
	"math"

	"github.com/jonathan/success-predictor/internal/types"
)

// Salary range and confidence-interval spreads around the median estimate.
const (
	salaryRangeLow  = 0.85
	salaryRangeHigh = 1.20
	salaryCILow     = 0.75
	salaryCIHigh    = 1.35
)

// SalaryPredictor estimates the compensation range for the target role.
type SalaryPredictor struct {
	remote *RemoteScorer
}

// NewSalaryPredictor creates a predictor. A nil remote scorer means
// heuristic-only operation.
func NewSalaryPredictor(remote *RemoteScorer) *SalaryPredictor {
	return &SalaryPredictor{remote: remote}
}

// Predict returns the salary estimate, remote-first with heuristic fallback.
// The error is always nil from this implementation.
func (p *SalaryPredictor) Predict(ctx context.Context, fv *types.FeatureVector) (SalaryResult, error) {
	if remote := p.remote.Salary(ctx, fv); remote != nil {
		return SalaryResult{Prediction: *remote, Remote: true}, nil
	}
	return SalaryResult{Prediction: p.heuristic(fv)}, nil
}

// heuristic scales the industry base salary by experience, education, and
// breadth of skills. Each extra skill adds 2%, capped at +30%.
func (p *SalaryPredictor) heuristic(fv *types.FeatureVector) types.SalaryPrediction {
	base := salaryBase(fv.Industry)

	experienceFactor := 1 + fv.CVFeatures.ExperienceYears*0.08
	eduFactor := educationMultiplier(int(fv.CVFeatures.EducationLevel))
	skillFactor := 1 + math.Min(0.3, fv.CVFeatures.SkillCount*0.02)

	median := base * experienceFactor * eduFactor * skillFactor

	return types.SalaryPrediction{
		Min:    round2(median * salaryRangeLow),
		Median: round2(median),
		Max:    round2(median * salaryRangeHigh),
		ConfidenceInterval: types.ConfidenceInterval{
			Lower: round2(median * salaryCILow),
			Upper: round2(median * salaryCIHigh),
		},
		IndustryBenchmark: base,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
