package features

import (
	"time"

	"github.com/jonathan/success-predictor/internal/types"
)

// Fallback constants used when extraction fails. Values approximate corpus
// medians for an ordinary mid-career applicant, so downstream heuristics stay
// in a sane range. Every feature field is always populated: partial failure
// never produces a gap.
const (
	fallbackWordCount       = 150
	fallbackSectionCount    = 4
	fallbackSkillCount      = 5
	fallbackExperienceCount = 2
	fallbackExperienceYears = 2.0
	fallbackEducationCount  = 1
	fallbackEducationLevel  = 2 // bachelor
	fallbackProjectCount    = 1
	fallbackAchievements    = 2
	fallbackKeywordDensity  = 0.02
	fallbackReadability     = 60
	fallbackFormatting      = 65

	fallbackSkillMatch       = 0.3
	fallbackExperienceRel    = 0.4
	fallbackEducationMatch   = 0.5
	fallbackIndustryExp      = 0.3
	fallbackLocationMatch    = 0.5
	fallbackSalaryAlignment  = 0.5
	fallbackTitleSimilarity  = 0.3
	fallbackCompanyFit       = 0.5
)

// FallbackVector returns the fixed feature vector substituted when extraction
// fails. The orchestrator never has to treat extraction failure as an error.
func FallbackVector(req *types.PredictionRequest) *types.FeatureVector {
	industry := "default"
	if req.Industry != "" {
		industry = req.Industry
	}

	return &types.FeatureVector{
		UserID:         req.UserID,
		JobID:          req.JobID,
		ExtractionDate: time.Now(),
		Industry:       industry,
		CompanySize:    "default",
		CVFeatures: types.CVFeatures{
			WordCount:          fallbackWordCount,
			SectionCount:       fallbackSectionCount,
			SkillCount:         fallbackSkillCount,
			ExperienceCount:    fallbackExperienceCount,
			ExperienceYears:    fallbackExperienceYears,
			EducationCount:     fallbackEducationCount,
			EducationLevel:     fallbackEducationLevel,
			CertificationCount: 0,
			ProjectCount:       fallbackProjectCount,
			AchievementCount:   fallbackAchievements,
			KeywordDensity:     fallbackKeywordDensity,
			ReadabilityScore:   fallbackReadability,
			FormattingScore:    fallbackFormatting,
		},
		MatchingFeatures: types.MatchingFeatures{
			SkillMatch:          fallbackSkillMatch,
			ExperienceRelevance: fallbackExperienceRel,
			EducationMatch:      fallbackEducationMatch,
			IndustryExperience:  fallbackIndustryExp,
			LocationMatch:       fallbackLocationMatch,
			SalaryAlignment:     fallbackSalaryAlignment,
			TitleSimilarity:     fallbackTitleSimilarity,
			CompanyFit:          fallbackCompanyFit,
		},
		MarketFeatures: types.MarketFeatures{
			IndustryGrowth:         profileFor(industry).Growth,
			LocationCompetitiveness: 0.5,
			SalaryCompetitiveness:  0.5,
			DemandSupplyRatio:      1.0,
			Seasonality:            0.5,
			EconomicIndicator:      0.5,
		},
		BehaviorFeatures: FallbackBehavior(),
		DerivedFeatures: types.DerivedFeatures{
			OverQualification:   0.3,
			UnderQualification:  0.3,
			CareerProgression:   0.5,
			Stability:           0.5,
			Adaptability:        0.5,
			LeadershipPotential: 0.4,
			InnovationIndicator: 0.4,
		},
	}
}

// FallbackBehavior returns the behavior-group constants used when no usage
// history is available. The behavior extractor owns real extraction; the
// feature extractor always fills this group with these defaults.
func FallbackBehavior() types.BehaviorFeatures {
	return types.BehaviorFeatures{
		ApplicationTiming:  7,
		WeekdayApplication: 1,
		HourOfDay:          12,
		ApplicationMethod:  1,
		CVOptimization:     0.5,
		PlatformEngagement: 0.3,
		PriorApplications:  3,
	}
}
