package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/success-predictor/internal/types"
)

func TestRequiredYearsParsing(t *testing.T) {
	assert.Equal(t, 5.0, requiredYears("5+ years of Go experience"))
	assert.Equal(t, 3.0, requiredYears("at least 3 years in backend roles"))
	assert.Equal(t, 7.0, requiredYears("7+ yrs required"))
	assert.Equal(t, 0.0, requiredYears("experienced engineers welcome"))
}

func TestUnderQualificationGapSoftenedBySkills(t *testing.T) {
	// Two years against a ten-year bar: raw gap is 0.8.
	weak := underQualification(2, 10, 0)
	strong := underQualification(2, 10, 1)

	assert.InDelta(t, 0.8, weak, 1e-9)
	assert.InDelta(t, 0.4, strong, 1e-9) // full skill match halves the gap
	assert.Equal(t, 0.1, underQualification(12, 10, 0))
	assert.Equal(t, 0.1, underQualification(5, 0, 0)) // no stated bar
}

func TestOverQualificationGrowsWithExcess(t *testing.T) {
	assert.Equal(t, 0.1, overQualification(5, 5, 0))
	assert.Equal(t, 0.1, overQualification(6.5, 5, 0)) // within two-year grace
	assert.InDelta(t, 0.375, overQualification(10, 5, 0), 1e-9)
	assert.InDelta(t, 0.475, overQualification(10, 5, 1), 1e-9) // education bump
}

func TestCareerProgressionRisingTitles(t *testing.T) {
	rising := &types.CV{Experience: []types.ExperienceEntry{
		{Title: "Staff Engineer"},
		{Title: "Senior Engineer"},
		{Title: "Engineer"},
	}}
	falling := &types.CV{Experience: []types.ExperienceEntry{
		{Title: "Engineer"},
		{Title: "Director of Engineering"},
	}}

	assert.Equal(t, 1.0, careerProgression(rising))
	assert.InDelta(t, 0.1, careerProgression(falling), 1e-9)
	assert.Equal(t, 0.4, careerProgression(&types.CV{Experience: []types.ExperienceEntry{{Title: "Engineer"}}}))
}

func TestStabilityAverageTenure(t *testing.T) {
	cv := &types.CV{Experience: []types.ExperienceEntry{{Title: "a"}, {Title: "b"}}}

	assert.Equal(t, 1.0, stability(cv, 6))             // 3y average caps the scale
	assert.InDelta(t, 0.5, stability(cv, 3), 1e-9)     // 1.5y average
	assert.Equal(t, 0.3, stability(&types.CV{}, 0))    // no history
}

func TestLeadershipAndInnovationSignals(t *testing.T) {
	leader := &types.CV{Experience: []types.ExperienceEntry{{
		Title:       "Engineering Manager",
		Description: "Managed a team of eight and mentored three juniors into senior roles.",
	}}}

	score := termPresence(leader, leadershipTerms)
	assert.InDelta(t, 0.75, score, 1e-9) // manager, managed, mentored

	inventor := &types.CV{
		Experience: []types.ExperienceEntry{{Description: "Architected and launched a prototype search engine."}},
		Projects:   []types.ProjectEntry{{Name: "one"}, {Name: "two"}},
	}
	assert.InDelta(t, 0.95, innovationIndicator(inventor), 1e-9) // 3 terms /4 + 0.2 projects
}

func TestExtractDerivedFeaturesInRange(t *testing.T) {
	cvF, err := ExtractCVFeatures(sampleCV(), sampleJob)
	require.NoError(t, err)
	matchF, err := ExtractMatchingFeatures(matchingRequest())
	require.NoError(t, err)

	f, err := ExtractDerivedFeatures(cvF, matchF, types.MarketFeatures{}, matchingRequest())

	require.NoError(t, err)
	for name, v := range map[string]float64{
		"over_qualification":   f.OverQualification,
		"under_qualification":  f.UnderQualification,
		"career_progression":   f.CareerProgression,
		"stability":            f.Stability,
		"adaptability":         f.Adaptability,
		"leadership_potential": f.LeadershipPotential,
		"innovation_indicator": f.InnovationIndicator,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
	// Rising titles on the sample CV.
	assert.Equal(t, 1.0, f.CareerProgression)
}
