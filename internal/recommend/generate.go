// Package recommend produces actionable advice alongside a prediction: what
// the candidate should change to raise their interview and offer odds.
package recommend

import (
	"fmt"
	"sort"

	"github.com/jonathan/success-predictor/internal/types"
)

// maxRecommendations caps the list so the advice stays readable.
const maxRecommendations = 5

// rule maps a feature condition to one recommendation. Weight orders the
// output: heavier rules describe bigger expected probability gains.
type rule struct {
	applies func(fv *types.FeatureVector, cv *types.CV) bool
	weight  float64
	build   func(fv *types.FeatureVector) types.Recommendation
}

var rules = []rule{
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.MatchingFeatures.SkillMatch < 0.4
		},
		weight: 1.0,
		build: func(fv *types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "skills",
				Message:  fmt.Sprintf("Only %.0f%% of your skills match this posting. Mirror the posting's own terms for the skills you genuinely have.", fv.MatchingFeatures.SkillMatch*100),
				Impact:   "high",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.DerivedFeatures.UnderQualification > 0.5
		},
		weight: 0.9,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "experience",
				Message:  "The role asks for more experience than your CV shows. Emphasize scope and outcomes of your strongest projects to close the gap.",
				Impact:   "high",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.CVFeatures.WordCount < 150
		},
		weight: 0.8,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "cv",
				Message:  "Your CV is very short. Expand each role with responsibilities and measurable results.",
				Impact:   "high",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.CVFeatures.AchievementCount == 0 && fv.CVFeatures.ExperienceCount > 0
		},
		weight: 0.7,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "cv",
				Message:  "No quantified achievements found. Add concrete numbers (revenue, users, latency, team size) to your experience bullets.",
				Impact:   "medium",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.CVFeatures.ReadabilityScore < 50
		},
		weight: 0.6,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "cv",
				Message:  "Long, dense sentences make your CV hard to scan. Break them into short bullet points.",
				Impact:   "medium",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.MatchingFeatures.SalaryAlignment < 0.4
		},
		weight: 0.5,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "expectations",
				Message:  "Your desired salary sits far from the market rate for this role. Reconsider the target range before applying.",
				Impact:   "medium",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.BehaviorFeatures.ApplicationTiming > 14
		},
		weight: 0.4,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "timing",
				Message:  "You tend to apply weeks after postings go up. Applying within the first few days measurably improves response rates.",
				Impact:   "medium",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, cv *types.CV) bool {
			return cv != nil && len(cv.Certifications) == 0 && fv.MatchingFeatures.EducationMatch < 0.5
		},
		weight: 0.3,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "education",
				Message:  "Certifications can offset a formal-education gap for this role. List relevant ones or consider earning one.",
				Impact:   "low",
			}
		},
	},
	{
		applies: func(fv *types.FeatureVector, _ *types.CV) bool {
			return fv.CVFeatures.KeywordDensity < 0.01 && fv.CVFeatures.WordCount >= 150
		},
		weight: 0.2,
		build: func(*types.FeatureVector) types.Recommendation {
			return types.Recommendation{
				Category: "cv",
				Message:  "Your CV barely uses the posting's vocabulary. Screening software ranks by keyword overlap, so weave the role's terms into your summary.",
				Impact:   "low",
			}
		},
	},
}

// Generate builds the recommendation list for a prediction, heaviest rules
// first, capped at maxRecommendations. The returned Priority fields are 1-based
// positions in the final order.
func Generate(fv *types.FeatureVector, cv *types.CV) []types.Recommendation {
	type weighted struct {
		rec    types.Recommendation
		weight float64
	}
	var hits []weighted
	for _, r := range rules {
		if r.applies(fv, cv) {
			hits = append(hits, weighted{rec: r.build(fv), weight: r.weight})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].weight > hits[j].weight })
	if len(hits) > maxRecommendations {
		hits = hits[:maxRecommendations]
	}

	recs := make([]types.Recommendation, len(hits))
	for i, h := range hits {
		h.rec.Priority = i + 1
		recs[i] = h.rec
	}
	return recs
}
