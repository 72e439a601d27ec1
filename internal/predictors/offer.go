package predictors

import (
	"context"

	"github.com/jonathan/success-predictor/internal/types"
)

// Offer probability bounds. Offers are rarer than interviews, so both bounds
// sit below the interview bounds.
const (
	offerFloor = 0.005
	offerCeil  = 0.85
)

// OfferPredictor estimates the probability of receiving an offer.
type OfferPredictor struct {
	remote  *RemoteScorer
	weights OfferWeights
}

// NewOfferPredictor creates a predictor. A nil remote scorer means
// heuristic-only operation.
func NewOfferPredictor(remote *RemoteScorer) *OfferPredictor {
	return &OfferPredictor{remote: remote, weights: DefaultOfferWeights}
}

// Predict returns the offer probability for a feature vector, remote-first
// with heuristic fallback. The error is always nil from this implementation.
func (p *OfferPredictor) Predict(ctx context.Context, fv *types.FeatureVector) (Result, error) {
	if remote := p.remote.Probability(ctx, "offer", fv); remote != nil {
		return Result{Probability: clamp(*remote, offerFloor, offerCeil), Remote: true}, nil
	}
	return Result{Probability: p.heuristic(fv)}, nil
}

// heuristic computes the weighted offer score. Skill match enters squared:
// an offer needs depth, and strong matches are rewarded disproportionately.
func (p *OfferPredictor) heuristic(fv *types.FeatureVector) float64 {
	m := fv.MatchingFeatures
	w := p.weights

	score := w.Base +
		m.SkillMatch*m.SkillMatch*w.SkillMatchSquared +
		m.ExperienceRelevance*w.ExperienceRelevance +
		m.EducationMatch*w.EducationMatch +
		m.TitleSimilarity*w.TitleSimilarity +
		m.CompanyFit*w.CompanyFit +
		marketBonus(fv)*w.MarketBonus

	// Leadership and trajectory bonuses, up to +10% each.
	d := fv.DerivedFeatures
	score = thresholdBonus(score, d.LeadershipPotential, 0.6, 0.10)
	score = thresholdBonus(score, d.InnovationIndicator, 0.6, 0.10)
	score = thresholdBonus(score, d.CareerProgression, 0.6, 0.10)
	score = thresholdBonus(score, d.Adaptability, 0.6, 0.10)

	// Under-qualification is the offer killer: up to -60%.
	score = qualificationPenalty(score, d.UnderQualification, 0.5, 0.60)
	// Over-qualification costs less: up to -25%.
	score = qualificationPenalty(score, d.OverQualification, 0.7, 0.25)

	// Contested locations depress offers, quiet ones lift them (±15%).
	score *= 1 + (0.5-fv.MarketFeatures.LocationCompetitiveness)*0.30

	// Salary misalignment halves the score at worst.
	score *= 0.5 + m.SalaryAlignment*0.5

	return clamp(score, offerFloor, offerCeil)
}
