package predictors

import (
	"context"
	"math"

	"github.com/jonathan/success-predictor/internal/types"
)

// TimeToHirePredictor estimates the hiring timeline with a five-phase breakdown.
type TimeToHirePredictor struct {
	remote *RemoteScorer
}

// NewTimeToHirePredictor creates a predictor. A nil remote scorer means
// heuristic-only operation.
func NewTimeToHirePredictor(remote *RemoteScorer) *TimeToHirePredictor {
	return &TimeToHirePredictor{remote: remote}
}

// Predict returns the timeline estimate, remote-first with heuristic fallback.
// The error is always nil from this implementation.
func (p *TimeToHirePredictor) Predict(ctx context.Context, fv *types.FeatureVector) (TimelineResult, error) {
	if remote := p.remote.Timeline(ctx, fv); remote != nil {
		return TimelineResult{Prediction: *remote, Remote: true}, nil
	}
	return TimelineResult{Prediction: p.heuristic(fv)}, nil
}

// heuristic scales the industry hiring baseline by role complexity and
// company size, then splits the median across the five hiring phases.
func (p *TimeToHirePredictor) heuristic(fv *types.FeatureVector) types.TimeToHire {
	base := hiringBase(fv.Industry)
	median := base * roleComplexityFactor(fv) * companySizeFactor(fv.CompanySize)

	return types.TimeToHire{
		MinDays:    math.Round(median * 0.6),
		MedianDays: math.Round(median),
		MaxDays:    math.Round(median * 1.6),
		Phases: types.HiringPhases{
			Application: math.Round(median * phaseShares.Application),
			Screening:   math.Round(median * phaseShares.Screening),
			Interviews:  math.Round(median * phaseShares.Interviews),
			Decision:    math.Round(median * phaseShares.Decision),
			Negotiation: math.Round(median * phaseShares.Negotiation),
		},
	}
}

// roleComplexityFactor stretches timelines for senior roles: leadership-heavy
// positions and long-tenured candidates go through more interview rounds.
// Range [1.0, 1.7].
func roleComplexityFactor(fv *types.FeatureVector) float64 {
	years := math.Min(fv.CVFeatures.ExperienceYears, 20)
	return 1 + 0.4*fv.DerivedFeatures.LeadershipPotential + 0.3*years/20
}
