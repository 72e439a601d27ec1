// Package features extracts the multi-source feature groups that feed the
// outcome predictors.
package features

import (
	"strings"

	"github.com/jonathan/success-predictor/internal/types"
)

// ExtractCVFeatures computes structural and content measurements of the résumé.
// Readability and formatting are 0-100 scores; everything else is a count or ratio.
func ExtractCVFeatures(cv *types.CV, jobDescription string) (types.CVFeatures, error) {
	text := cvText(cv)
	words := strings.Fields(text)

	f := types.CVFeatures{
		WordCount:          float64(len(words)),
		SectionCount:       float64(countSections(cv)),
		SkillCount:         float64(len(cv.Skills)),
		ExperienceCount:    float64(len(cv.Experience)),
		ExperienceYears:    TotalExperienceYears(cv),
		EducationCount:     float64(len(cv.Education)),
		EducationLevel:     float64(HighestDegreeRank(cv)),
		CertificationCount: float64(len(cv.Certifications)),
		ProjectCount:       float64(len(cv.Projects)),
		AchievementCount:   float64(countAchievements(cv)),
		KeywordDensity:     keywordDensity(words, jobDescription),
		ReadabilityScore:   readabilityScore(text),
		FormattingScore:    formattingScore(cv),
	}
	return f, nil
}

// cvText joins the free-text content of a CV for word-level measurements.
func cvText(cv *types.CV) string {
	var sb strings.Builder
	sb.WriteString(cv.Summary)
	for _, exp := range cv.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
		for _, a := range exp.Achievements {
			sb.WriteString(" ")
			sb.WriteString(a)
		}
	}
	for _, p := range cv.Projects {
		sb.WriteString(" ")
		sb.WriteString(p.Description)
	}
	for _, a := range cv.Achievements {
		sb.WriteString(" ")
		sb.WriteString(a)
	}
	return sb.String()
}

func countSections(cv *types.CV) int {
	count := 0
	if cv.Summary != "" {
		count++
	}
	if len(cv.Skills) > 0 {
		count++
	}
	if len(cv.Experience) > 0 {
		count++
	}
	if len(cv.Education) > 0 {
		count++
	}
	if len(cv.Certifications) > 0 {
		count++
	}
	if len(cv.Projects) > 0 {
		count++
	}
	if len(cv.Achievements) > 0 {
		count++
	}
	return count
}

func countAchievements(cv *types.CV) int {
	count := len(cv.Achievements)
	for _, exp := range cv.Experience {
		count += len(exp.Achievements)
	}
	return count
}

// keywordDensity is the fraction of CV words that also appear in the job
// description. Capped at 0.25: beyond that the CV is keyword stuffing, not
// better targeted.
func keywordDensity(cvWords []string, jobDescription string) float64 {
	if len(cvWords) == 0 || jobDescription == "" {
		return 0
	}

	jobTokens := tokenSet(jobDescription)
	matches := 0
	for _, w := range cvWords {
		if jobTokens[normalizeToken(w)] {
			matches++
		}
	}

	density := float64(matches) / float64(len(cvWords))
	if density > 0.25 {
		density = 0.25
	}
	return density
}

// readabilityScore approximates readability from average sentence length.
// Sentences of 12-22 words score best.
func readabilityScore(text string) float64 {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	if len(sentences) == 0 {
		return 0
	}

	totalWords := 0
	counted := 0
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if n == 0 {
			continue
		}
		totalWords += n
		counted++
	}
	if counted == 0 {
		return 0
	}

	avg := float64(totalWords) / float64(counted)
	switch {
	case avg >= 12 && avg <= 22:
		return 90
	case avg >= 8 && avg < 12:
		return 75
	case avg > 22 && avg <= 30:
		return 70
	case avg > 0 && avg < 8:
		return 55
	default:
		return 40
	}
}

// formattingScore rewards complete, consistently dated CVs.
func formattingScore(cv *types.CV) float64 {
	score := 0.0

	if cv.Summary != "" {
		score += 20
	}
	if len(cv.Skills) > 0 {
		score += 20
	}
	if len(cv.Experience) > 0 {
		score += 20
	}
	if len(cv.Education) > 0 {
		score += 15
	}

	// Dated experience entries indicate careful structure.
	dated := 0
	for _, exp := range cv.Experience {
		if exp.StartDate != "" {
			dated++
		}
	}
	if len(cv.Experience) > 0 && dated == len(cv.Experience) {
		score += 15
	} else if dated > 0 {
		score += 8
	}

	if len(cv.Certifications) > 0 || len(cv.Projects) > 0 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
