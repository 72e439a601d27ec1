package predictors

import (
	"context"

	"github.com/jonathan/success-predictor/internal/types"
)

// Interview probability bounds. Nobody is ever certain to get or miss an
// interview, so the heuristic never emits 0 or 1.
const (
	interviewFloor = 0.01
	interviewCeil  = 0.95
)

// InterviewPredictor estimates the probability of reaching an interview.
type InterviewPredictor struct {
	remote  *RemoteScorer
	weights InterviewWeights
}

// NewInterviewPredictor creates a predictor. A nil remote scorer means
// heuristic-only operation.
func NewInterviewPredictor(remote *RemoteScorer) *InterviewPredictor {
	return &InterviewPredictor{remote: remote, weights: DefaultInterviewWeights}
}

// Predict returns the interview probability for a feature vector. The remote
// scoring service is tried first; on any soft failure the deterministic
// heuristic answers. The error return exists for the orchestrator's failure
// chain and is always nil from this implementation.
func (p *InterviewPredictor) Predict(ctx context.Context, fv *types.FeatureVector) (Result, error) {
	if remote := p.remote.Probability(ctx, "interview", fv); remote != nil {
		return Result{Probability: clamp(*remote, interviewFloor, interviewCeil), Remote: true}, nil
	}
	return Result{Probability: p.heuristic(fv)}, nil
}

// heuristic computes the weighted interview score: additive base terms, then
// multiplicative trajectory bonuses, then behavior bonuses, then
// qualification penalties, then the final clamp.
func (p *InterviewPredictor) heuristic(fv *types.FeatureVector) float64 {
	m := fv.MatchingFeatures
	w := p.weights

	score := w.Base +
		m.SkillMatch*w.SkillMatch +
		m.ExperienceRelevance*w.ExperienceRelevance +
		m.TitleSimilarity*w.TitleSimilarity +
		m.EducationMatch*w.EducationMatch +
		cvQuality(fv)*w.CVQuality +
		marketBonus(fv)*w.MarketBonus

	// Career-trajectory bonuses, up to +15% each.
	d := fv.DerivedFeatures
	score = thresholdBonus(score, d.CareerProgression, 0.6, 0.15)
	score = thresholdBonus(score, d.Stability, 0.6, 0.15)
	score = thresholdBonus(score, d.Adaptability, 0.6, 0.15)
	score = thresholdBonus(score, d.InnovationIndicator, 0.6, 0.15)

	// Behavior bonuses.
	b := fv.BehaviorFeatures
	switch {
	case b.ApplicationTiming <= 2:
		score *= 1.08 // applied within two days of posting
	case b.ApplicationTiming <= 7:
		score *= 1.04
	}
	if b.WeekdayApplication >= 1 {
		score *= 1.03
	}
	if b.CVOptimization > 0.7 {
		score *= 1.05
	}
	if b.PlatformEngagement > 0.6 {
		score *= 1.04
	}

	// Qualification penalties, up to -30% each.
	score = qualificationPenalty(score, d.OverQualification, 0.7, 0.30)
	score = qualificationPenalty(score, d.UnderQualification, 0.7, 0.30)

	return clamp(score, interviewFloor, interviewCeil)
}
