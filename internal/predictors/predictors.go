package predictors

import "github.com/jonathan/success-predictor/internal/types"

// Result is a probability prediction with its provenance: Remote is true when
// the remote scoring service produced the value rather than a heuristic.
type Result struct {
	Probability float64
	Remote      bool
}

// SalaryResult is a salary prediction with its provenance.
type SalaryResult struct {
	Prediction types.SalaryPrediction
	Remote     bool
}

// TimelineResult is a time-to-hire prediction with its provenance.
type TimelineResult struct {
	Prediction types.TimeToHire
	Remote     bool
}

// cvQuality reduces the CV group's readability and formatting scores (0-100)
// to a single [0,1] quality input.
func cvQuality(f *types.FeatureVector) float64 {
	return clamp((f.CVFeatures.ReadabilityScore+f.CVFeatures.FormattingScore)/200, 0, 1)
}

// marketBonus reduces the market group to a single [0,1] favorability input.
// A balanced market (growth 0, demand/supply 1, neutral indicator 0) scores 0.
func marketBonus(f *types.FeatureVector) float64 {
	m := f.MarketFeatures
	return clamp(0.5*m.IndustryGrowth+0.3*(m.DemandSupplyRatio-1)+0.2*m.EconomicIndicator, 0, 1)
}

// qualificationPenalty applies the shared over/under-qualification penalty
// shape: no penalty below the threshold, linear up to maxPenalty at 1.0.
func qualificationPenalty(score, value, threshold, maxPenalty float64) float64 {
	if value <= threshold {
		return score
	}
	return score * (1 - (value-threshold)/(1-threshold)*maxPenalty)
}

// thresholdBonus applies the shared derived-feature bonus shape: no bonus
// below the threshold, linear up to maxBonus at 1.0.
func thresholdBonus(score, value, threshold, maxBonus float64) float64 {
	if value <= threshold {
		return score
	}
	return score * (1 + (value-threshold)/(1-threshold)*maxBonus)
}
