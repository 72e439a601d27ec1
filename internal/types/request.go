// Package types provides type definitions for structured data used throughout the success-predictor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PredictionRequest describes a single job-application event to score.
// One immutable request per prediction call.
type PredictionRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	JobID          string `json:"job_id" validate:"required"`
	CV             *CV    `json:"cv" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`

	// Optional context used by matching and market feature extraction.
	TargetRole    string         `json:"target_role,omitempty"`
	Industry      string         `json:"industry,omitempty"`
	Location      string         `json:"location,omitempty"`
	MarketContext *MarketContext `json:"market_context,omitempty"`
}

// MarketContext carries caller-supplied market signals. All fields are optional;
// missing values fall back to industry defaults during extraction.
type MarketContext struct {
	IndustryGrowth    float64 `json:"industry_growth,omitempty"`
	DemandSupplyRatio float64 `json:"demand_supply_ratio,omitempty"`
	EconomicIndicator float64 `json:"economic_indicator,omitempty"`
}
