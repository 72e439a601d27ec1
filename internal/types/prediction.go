package types

import "time"

// SuccessPrediction is the assembled probabilistic outcome for one
// job-application event. Every prediction is structurally complete regardless
// of which pipeline tier produced it; Confidence.Overall is the only signal
// distinguishing tiers.
type SuccessPrediction struct {
	PredictionID string    `json:"prediction_id"`
	UserID       string    `json:"user_id"`
	JobID        string    `json:"job_id"`
	Timestamp    time.Time `json:"timestamp"`

	InterviewProbability float64 `json:"interview_probability"`
	OfferProbability     float64 `json:"offer_probability"`
	// HireProbability is OfferProbability * 0.8 by convention.
	HireProbability float64 `json:"hire_probability"`

	SalaryPrediction     SalaryPrediction `json:"salary_prediction"`
	TimeToHire           TimeToHire       `json:"time_to_hire"`
	CompetitivenessScore float64          `json:"competitiveness_score"` // 0-100

	Confidence      Confidence       `json:"confidence"`
	Recommendations []Recommendation `json:"recommendations"`
	ModelMetadata   ModelMetadata    `json:"model_metadata"`
}

// SalaryPrediction is an estimated compensation range in annual currency units.
type SalaryPrediction struct {
	Min               float64            `json:"min"`
	Median            float64            `json:"median"`
	Max               float64            `json:"max"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
	IndustryBenchmark float64            `json:"industry_benchmark"`
}

// ConfidenceInterval bounds an estimate.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// TimeToHire estimates the hiring timeline in days, with a per-phase breakdown
// whose phases sum to approximately the median estimate.
type TimeToHire struct {
	MinDays    float64      `json:"min_days"`
	MedianDays float64      `json:"median_days"`
	MaxDays    float64      `json:"max_days"`
	Phases     HiringPhases `json:"phases"`
}

// HiringPhases breaks the hiring timeline into its five stages (days).
type HiringPhases struct {
	Application float64 `json:"application"`
	Screening   float64 `json:"screening"`
	Interviews  float64 `json:"interviews"`
	Decision    float64 `json:"decision"`
	Negotiation float64 `json:"negotiation"`
}

// Confidence holds per-facet confidence scores in [0,1]. Lower overall values
// indicate degraded pipeline tiers (0.6 heuristic, 0.3 minimal).
type Confidence struct {
	Overall    float64 `json:"overall"`
	Interview  float64 `json:"interview"`
	Offer      float64 `json:"offer"`
	Salary     float64 `json:"salary"`
	TimeToHire float64 `json:"time_to_hire"`
}

// Recommendation is a single improvement suggestion, ordered by priority
// (1 = highest) within SuccessPrediction.Recommendations.
type Recommendation struct {
	Priority int    `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Impact   string `json:"impact"` // "high", "medium", "low"
}

// ModelMetadata records which model (or heuristic version) produced a prediction.
type ModelMetadata struct {
	ModelVersion    string   `json:"model_version"`
	FeaturesUsed    []string `json:"features_used"`
	TrainingSamples int      `json:"training_samples,omitempty"`
	TrainedAt       string   `json:"trained_at,omitempty"`
}
