package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/success-predictor/internal/types"
)

func sampleCV() *types.CV {
	return &types.CV{
		Summary: "Backend engineer who builds reliable distributed systems in Go and operates them in production. Comfortable owning services end to end, from design through deployment and on-call.",
		Skills:  []string{"Go", "PostgreSQL", "Kubernetes"},
		Experience: []types.ExperienceEntry{
			{
				Title:        "Senior Software Engineer",
				Company:      "Beta",
				StartDate:    "2022-07",
				EndDate:      "present",
				Description:  "Lead a platform team building Go services on Kubernetes.",
				Achievements: []string{"Cut deployment time by 60% across 40 services."},
			},
			{
				Title:       "Software Engineer",
				Company:     "Acme",
				StartDate:   "2019-03",
				EndDate:     "2022-06",
				Description: "Built payment processing services backed by PostgreSQL.",
			},
		},
		Education:      []types.EducationEntry{{Degree: "BSc Computer Science", School: "State University"}},
		Certifications: []string{"CKA"},
		Projects:       []types.ProjectEntry{{Name: "loadgen", Description: "An open source load generator for gRPC services."}},
	}
}

const sampleJob = "Senior backend engineer. 5+ years experience with Go, Kubernetes, and PostgreSQL required. Bachelor degree preferred."

func TestExtractCVFeaturesCounts(t *testing.T) {
	f, err := ExtractCVFeatures(sampleCV(), sampleJob)

	require.NoError(t, err)
	assert.Equal(t, 3.0, f.SkillCount)
	assert.Equal(t, 2.0, f.ExperienceCount)
	assert.Equal(t, 1.0, f.EducationCount)
	assert.Equal(t, 2.0, f.EducationLevel) // bachelor
	assert.Equal(t, 1.0, f.CertificationCount)
	assert.Equal(t, 1.0, f.ProjectCount)
	assert.Equal(t, 1.0, f.AchievementCount)
	assert.Equal(t, 6.0, f.SectionCount) // no standalone achievements section
	assert.Greater(t, f.WordCount, 30.0)
	assert.Greater(t, f.ExperienceYears, 6.0)
}

func TestExtractCVFeaturesEmptyCV(t *testing.T) {
	f, err := ExtractCVFeatures(&types.CV{}, sampleJob)

	require.NoError(t, err)
	assert.Zero(t, f.WordCount)
	assert.Zero(t, f.SkillCount)
	assert.Zero(t, f.ReadabilityScore)
	assert.Zero(t, f.FormattingScore)
	assert.Zero(t, f.KeywordDensity)
}

func TestKeywordDensityCapsAtQuarter(t *testing.T) {
	// Every CV word appears in the job text: raw density would be 1.0.
	words := []string{"go", "kubernetes", "postgresql"}

	density := keywordDensity(words, "go kubernetes postgresql")

	assert.Equal(t, 0.25, density)
}

func TestReadabilityScoreBands(t *testing.T) {
	best := "This sentence contains exactly fifteen words so it lands in the ideal readability band here."
	assert.Equal(t, 90.0, readabilityScore(best))

	choppy := "Go. Fast. Works."
	assert.Equal(t, 55.0, readabilityScore(choppy))

	assert.Equal(t, 0.0, readabilityScore(""))
}

func TestFormattingScoreRewardsCompleteness(t *testing.T) {
	full := formattingScore(sampleCV())
	assert.Equal(t, 100.0, full)

	partial := formattingScore(&types.CV{Summary: "Engineer."})
	assert.Equal(t, 20.0, partial)

	undated := sampleCV()
	undated.Experience[1].StartDate = ""
	assert.Equal(t, 93.0, formattingScore(undated)) // mixed dating scores 8 instead of 15
}
