package types

import "time"

// FeatureVector is the structured numeric summary of a candidate/job pair used
// as predictor input. Every field is always populated: partial extraction
// failures substitute documented fallback constants instead of leaving gaps.
type FeatureVector struct {
	UserID         string    `json:"user_id"`
	JobID          string    `json:"job_id"`
	ExtractionDate time.Time `json:"extraction_date"`

	// Industry and CompanySize are request-level context carried alongside the
	// numeric groups so predictors can select the right coefficient rows.
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`

	CVFeatures       CVFeatures       `json:"cv_features"`
	MatchingFeatures MatchingFeatures `json:"matching_features"`
	MarketFeatures   MarketFeatures   `json:"market_features"`
	BehaviorFeatures BehaviorFeatures `json:"behavior_features"`
	DerivedFeatures  DerivedFeatures  `json:"derived_features"`
}

// CVFeatures are structural and content measurements of the résumé itself.
type CVFeatures struct {
	WordCount          float64 `json:"word_count"`
	SectionCount       float64 `json:"section_count"`
	SkillCount         float64 `json:"skill_count"`
	ExperienceCount    float64 `json:"experience_count"`
	ExperienceYears    float64 `json:"experience_years"`
	EducationCount     float64 `json:"education_count"`
	EducationLevel     float64 `json:"education_level"` // degree rank code: 0 none .. 4 phd
	CertificationCount float64 `json:"certification_count"`
	ProjectCount       float64 `json:"project_count"`
	AchievementCount   float64 `json:"achievement_count"`
	KeywordDensity     float64 `json:"keyword_density"`
	ReadabilityScore   float64 `json:"readability_score"`
	FormattingScore    float64 `json:"formatting_score"`
}

// MatchingFeatures measure candidate/job fit. Each field is in [0,1].
type MatchingFeatures struct {
	SkillMatch          float64 `json:"skill_match"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	EducationMatch      float64 `json:"education_match"`
	IndustryExperience  float64 `json:"industry_experience"`
	LocationMatch       float64 `json:"location_match"`
	SalaryAlignment     float64 `json:"salary_alignment"`
	TitleSimilarity     float64 `json:"title_similarity"`
	CompanyFit          float64 `json:"company_fit"`
}

// MarketFeatures describe labor-market conditions for the target role.
type MarketFeatures struct {
	IndustryGrowth         float64 `json:"industry_growth"`
	LocationCompetitiveness float64 `json:"location_competitiveness"`
	SalaryCompetitiveness  float64 `json:"salary_competitiveness"`
	DemandSupplyRatio      float64 `json:"demand_supply_ratio"`
	Seasonality            float64 `json:"seasonality"`
	EconomicIndicator      float64 `json:"economic_indicator"`
}

// BehaviorFeatures summarize the user's historical application behavior.
type BehaviorFeatures struct {
	ApplicationTiming  float64 `json:"application_timing"` // days since posting
	WeekdayApplication float64 `json:"weekday_application"`
	HourOfDay          float64 `json:"hour_of_day"`
	ApplicationMethod  float64 `json:"application_method"`
	CVOptimization     float64 `json:"cv_optimization"`
	PlatformEngagement float64 `json:"platform_engagement"`
	PriorApplications  float64 `json:"prior_applications"`
}

// DerivedFeatures are second-order signals computed from the other groups
// plus raw CV/job text. Each field is in [0,1].
type DerivedFeatures struct {
	OverQualification   float64 `json:"over_qualification"`
	UnderQualification  float64 `json:"under_qualification"`
	CareerProgression   float64 `json:"career_progression"`
	Stability           float64 `json:"stability"`
	Adaptability        float64 `json:"adaptability"`
	LeadershipPotential float64 `json:"leadership_potential"`
	InnovationIndicator float64 `json:"innovation_indicator"`
}
