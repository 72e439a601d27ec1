package features

import "github.com/jonathan/success-predictor/internal/types"

// QualityReport summarizes feature-vector completeness and input quality.
// Downstream recommendation logic consumes it; the prediction math does not.
type QualityReport struct {
	PopulatedGroups int      `json:"populated_groups"` // out of 5
	QualityScore    float64  `json:"quality_score"`    // 0-1
	Flags           []string `json:"flags"`
}

// ValidateFeatures scores a vector's completeness and flags weak inputs:
// very short CVs, missing experience, missing skills.
func ValidateFeatures(fv *types.FeatureVector) QualityReport {
	report := QualityReport{}

	cvPopulated := fv.CVFeatures.WordCount > 0 || fv.CVFeatures.SkillCount > 0
	matchPopulated := fv.MatchingFeatures != (types.MatchingFeatures{})
	marketPopulated := fv.MarketFeatures != (types.MarketFeatures{})
	behaviorPopulated := fv.BehaviorFeatures != (types.BehaviorFeatures{})
	derivedPopulated := fv.DerivedFeatures != (types.DerivedFeatures{})

	for _, populated := range []bool{cvPopulated, matchPopulated, marketPopulated, behaviorPopulated, derivedPopulated} {
		if populated {
			report.PopulatedGroups++
		}
	}

	if fv.CVFeatures.WordCount < 50 {
		report.Flags = append(report.Flags, "cv_too_short")
	}
	if fv.CVFeatures.ExperienceCount == 0 {
		report.Flags = append(report.Flags, "no_experience")
	}
	if fv.CVFeatures.SkillCount == 0 {
		report.Flags = append(report.Flags, "no_skills")
	}

	report.QualityScore = float64(report.PopulatedGroups)/5 - 0.1*float64(len(report.Flags))
	if report.QualityScore < 0 {
		report.QualityScore = 0
	}
	return report
}

// FeatureImportance is the static weight table used for explainability and
// recommendation ordering. Weights reflect each feature's influence on the
// interview and offer heuristics, not a trained model.
func FeatureImportance() map[string]float64 {
	return map[string]float64{
		"skill_match":          0.40,
		"experience_relevance": 0.25,
		"title_similarity":     0.15,
		"education_match":      0.10,
		"cv_quality":           0.05,
		"market_conditions":    0.05,
		"company_fit":          0.10,
		"salary_alignment":     0.08,
		"cv_optimization":      0.05,
		"application_timing":   0.04,
	}
}
