package features

import (
	"strings"
	"time"

	"github.com/jonathan/success-predictor/internal/types"
)

// marketProfile holds per-industry market coefficients. Values are named and
// versioned here so they can be tuned without touching extraction code.
type marketProfile struct {
	Growth          float64 // annual growth rate
	TypicalSalary   float64 // annual, used for alignment and competitiveness
	Demand          float64 // openings per qualified candidate
	Competitiveness float64 // 0-1, how contested openings are
}

// MarketTableVersion tags the coefficient table below.
const MarketTableVersion = "market-2026.1"

// marketProfiles is the per-industry coefficient table. "default" covers
// unrecognized industries.
var marketProfiles = map[string]marketProfile{
	"technology":    {Growth: 0.08, TypicalSalary: 95000, Demand: 1.3, Competitiveness: 0.7},
	"finance":      {Growth: 0.04, TypicalSalary: 90000, Demand: 1.0, Competitiveness: 0.8},
	"healthcare":   {Growth: 0.06, TypicalSalary: 75000, Demand: 1.4, Competitiveness: 0.5},
	"retail":       {Growth: 0.01, TypicalSalary: 45000, Demand: 0.9, Competitiveness: 0.4},
	"manufacturing": {Growth: 0.02, TypicalSalary: 60000, Demand: 0.95, Competitiveness: 0.5},
	"education":    {Growth: 0.01, TypicalSalary: 50000, Demand: 0.85, Competitiveness: 0.45},
	"default":      {Growth: 0.03, TypicalSalary: 70000, Demand: 1.0, Competitiveness: 0.5},
}

// profileFor returns the market profile for an industry, falling back to the
// default row.
func profileFor(industry string) marketProfile {
	if p, ok := marketProfiles[strings.ToLower(industry)]; ok {
		return p
	}
	return marketProfiles["default"]
}

// typicalSalary exposes the industry salary level to the matching extractor.
func typicalSalary(industry string) float64 {
	return profileFor(industry).TypicalSalary
}

// ExtractMarketFeatures derives labor-market features from the industry
// coefficient table, caller-supplied market context, and the calendar.
func ExtractMarketFeatures(req *types.PredictionRequest) (types.MarketFeatures, error) {
	p := profileFor(req.Industry)

	f := types.MarketFeatures{
		IndustryGrowth:         p.Growth,
		LocationCompetitiveness: locationCompetitiveness(req.Location),
		SalaryCompetitiveness:  salaryCompetitiveness(req.CV, req.Industry),
		DemandSupplyRatio:      p.Demand,
		Seasonality:            seasonalityFor(time.Now().Month()),
		EconomicIndicator:      0.5,
	}

	// Caller-supplied market context overrides table defaults.
	if ctx := req.MarketContext; ctx != nil {
		if ctx.IndustryGrowth != 0 {
			f.IndustryGrowth = ctx.IndustryGrowth
		}
		if ctx.DemandSupplyRatio != 0 {
			f.DemandSupplyRatio = ctx.DemandSupplyRatio
		}
		if ctx.EconomicIndicator != 0 {
			f.EconomicIndicator = ctx.EconomicIndicator
		}
	}
	return f, nil
}

// majorHubs are locations with dense, contested candidate pools.
var majorHubs = []string{"san francisco", "new york", "london", "berlin", "singapore", "seattle", "bangalore"}

// locationCompetitiveness scores how contested the job's location is, 0-1.
func locationCompetitiveness(location string) float64 {
	if location == "" {
		return 0.5
	}
	lower := strings.ToLower(location)
	if strings.Contains(lower, "remote") {
		return 0.9 // remote postings draw the widest applicant pool
	}
	for _, hub := range majorHubs {
		if strings.Contains(lower, hub) {
			return 0.8
		}
	}
	return 0.4
}

// salaryCompetitiveness compares the candidate's ask against market level:
// asking below market makes the candidate more competitive.
func salaryCompetitiveness(cv *types.CV, industry string) float64 {
	if cv == nil || cv.DesiredSalary <= 0 {
		return 0.5
	}
	ratio := cv.DesiredSalary / typicalSalary(industry)
	switch {
	case ratio <= 0.9:
		return 0.8
	case ratio <= 1.1:
		return 0.6
	case ratio <= 1.3:
		return 0.4
	default:
		return 0.2
	}
}

// seasonalityFor scores hiring activity by month. Hiring peaks in late winter
// and early fall, stalls in December.
func seasonalityFor(m time.Month) float64 {
	switch m {
	case time.January, time.February, time.September, time.October:
		return 0.8
	case time.March, time.April, time.May, time.November:
		return 0.6
	case time.June, time.July, time.August:
		return 0.45
	default: // December
		return 0.3
	}
}

// DetectCompanySize classifies the hiring company's size from job description
// wording. Returns "small", "large", or "default" when nothing signals size.
func DetectCompanySize(jobDescription string) string {
	lower := strings.ToLower(jobDescription)
	smallTerms := []string{"startup", "early-stage", "seed", "small team", "series a"}
	largeTerms := []string{"enterprise", "fortune 500", "global leader", "multinational", "10,000+"}

	for _, t := range largeTerms {
		if strings.Contains(lower, t) {
			return "large"
		}
	}
	for _, t := range smallTerms {
		if strings.Contains(lower, t) {
			return "small"
		}
	}
	return "default"
}
