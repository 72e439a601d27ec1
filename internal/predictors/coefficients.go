// Package predictors implements the per-outcome predictors: each attempts a
// remote scoring call and falls back to a deterministic weighted heuristic.
package predictors

import "strings"

// CoefficientsVersion tags the heuristic coefficient tables below. Bump when
// tuning so cached predictions carry the version that produced them.
const CoefficientsVersion = "heuristic-2026.1"

// InterviewWeights are the additive weights of the interview heuristic.
type InterviewWeights struct {
	Base                float64
	SkillMatch          float64
	ExperienceRelevance float64
	TitleSimilarity     float64
	EducationMatch      float64
	CVQuality           float64
	MarketBonus         float64
}

// DefaultInterviewWeights is the tuned interview coefficient row.
var DefaultInterviewWeights = InterviewWeights{
	Base:                0.15,
	SkillMatch:          0.40,
	ExperienceRelevance: 0.25,
	TitleSimilarity:     0.15,
	EducationMatch:      0.10,
	CVQuality:           0.05,
	MarketBonus:         0.05,
}

// OfferWeights are the additive weights of the offer heuristic. SkillMatch is
// applied quadratically: strong matches are rewarded disproportionately.
type OfferWeights struct {
	Base                float64
	SkillMatchSquared   float64
	ExperienceRelevance float64
	EducationMatch      float64
	TitleSimilarity     float64
	CompanyFit          float64
	MarketBonus         float64
}

// DefaultOfferWeights is the tuned offer coefficient row.
var DefaultOfferWeights = OfferWeights{
	Base:                0.08,
	SkillMatchSquared:   0.30,
	ExperienceRelevance: 0.25,
	EducationMatch:      0.15,
	TitleSimilarity:     0.10,
	CompanyFit:          0.10,
	MarketBonus:         0.10,
}

// salaryBases are annual base salaries per industry.
var salaryBases = map[string]float64{
	"technology":    95000,
	"finance":      90000,
	"healthcare":   75000,
	"retail":       45000,
	"manufacturing": 60000,
	"education":    50000,
	"default":      70000,
}

// educationMultipliers scale salary by degree rank code (0 none .. 4 phd).
var educationMultipliers = map[int]float64{
	0: 0.85,
	1: 0.95,
	2: 1.00,
	3: 1.12,
	4: 1.25,
}

// hiringBaseDays are median time-to-hire baselines per industry, in days.
var hiringBaseDays = map[string]float64{
	"technology":    28,
	"finance":      35,
	"healthcare":   30,
	"retail":       14,
	"manufacturing": 25,
	"education":    40,
	"default":      28,
}

// companySizeFactors stretch or compress hiring timelines by company size.
var companySizeFactors = map[string]float64{
	"small":   0.75,
	"large":   1.25,
	"default": 1.0,
}

// phaseShares split the median time-to-hire across the five hiring phases.
// Shares sum to 1 so the phase breakdown sums to the median estimate.
var phaseShares = struct {
	Application float64
	Screening   float64
	Interviews  float64
	Decision    float64
	Negotiation float64
}{
	Application: 0.18,
	Screening:   0.25,
	Interviews:  0.32,
	Decision:    0.15,
	Negotiation: 0.10,
}

func salaryBase(industry string) float64 {
	if v, ok := salaryBases[strings.ToLower(industry)]; ok {
		return v
	}
	return salaryBases["default"]
}

func hiringBase(industry string) float64 {
	if v, ok := hiringBaseDays[strings.ToLower(industry)]; ok {
		return v
	}
	return hiringBaseDays["default"]
}

func educationMultiplier(level int) float64 {
	if v, ok := educationMultipliers[level]; ok {
		return v
	}
	if level > 4 {
		return educationMultipliers[4]
	}
	return educationMultipliers[0]
}

func companySizeFactor(size string) float64 {
	if v, ok := companySizeFactors[strings.ToLower(size)]; ok {
		return v
	}
	return companySizeFactors["default"]
}
