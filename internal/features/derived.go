package features

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/success-predictor/internal/types"
)

// yearsRequiredRe matches "5+ years", "3 years", "7+ yrs" in job postings.
var yearsRequiredRe = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

// leadershipTerms in titles or descriptions signal people or technical leadership.
var leadershipTerms = []string{"lead", "manager", "head", "director", "principal", "mentored", "managed", "supervised"}

// innovationTerms signal inventive or greenfield work.
var innovationTerms = []string{"patent", "research", "prototype", "launched", "invented", "designed", "architected", "open source"}

// ExtractDerivedFeatures computes second-order signals from the primary groups
// plus raw CV and job text. It runs after the concurrent extractors because it
// depends on their outputs. Every output is in [0,1].
func ExtractDerivedFeatures(
	cvF types.CVFeatures,
	matchF types.MatchingFeatures,
	_ types.MarketFeatures,
	req *types.PredictionRequest,
) (types.DerivedFeatures, error) {
	required := requiredYears(req.JobDescription)
	years := cvF.ExperienceYears

	f := types.DerivedFeatures{
		OverQualification:   overQualification(years, required, matchF.EducationMatch),
		UnderQualification:  underQualification(years, required, matchF.SkillMatch),
		CareerProgression:   careerProgression(req.CV),
		Stability:           stability(req.CV, years),
		Adaptability:        adaptability(req.CV),
		LeadershipPotential: termPresence(req.CV, leadershipTerms),
		InnovationIndicator: innovationIndicator(req.CV),
	}
	return f, nil
}

// requiredYears extracts the experience requirement from the job description.
// Zero means no stated requirement.
func requiredYears(jobDescription string) float64 {
	m := yearsRequiredRe.FindStringSubmatch(strings.ToLower(jobDescription))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return float64(n)
}

// overQualification grows as the candidate exceeds the stated requirement.
func overQualification(years, required, educationMatch float64) float64 {
	if required == 0 {
		// Without a stated bar, only extreme tenure reads as overqualified.
		if years > 15 {
			return clamp01((years - 15) / 10)
		}
		return 0.1
	}
	excess := years - required
	if excess <= 2 {
		return 0.1
	}
	score := (excess - 2) / 8
	if educationMatch >= 1 {
		score += 0.1
	}
	return clamp01(score)
}

// underQualification grows as the candidate falls short of the requirement,
// softened by strong skill match.
func underQualification(years, required, skillMatch float64) float64 {
	if required == 0 || years >= required {
		return 0.1
	}
	gap := (required - years) / required
	return clamp01(gap * (1 - skillMatch*0.5))
}

// careerProgression rewards rising seniority across positions. Experience is
// ordered most-recent first.
func careerProgression(cv *types.CV) float64 {
	if len(cv.Experience) < 2 {
		return 0.4
	}

	rankOf := func(title string) int {
		lower := strings.ToLower(title)
		switch {
		case strings.Contains(lower, "chief"), strings.Contains(lower, "vp"), strings.Contains(lower, "director"):
			return 5
		case strings.Contains(lower, "head"), strings.Contains(lower, "principal"):
			return 4
		case strings.Contains(lower, "lead"), strings.Contains(lower, "staff"), strings.Contains(lower, "manager"):
			return 3
		case strings.Contains(lower, "senior"):
			return 2
		case strings.Contains(lower, "junior"), strings.Contains(lower, "intern"):
			return 0
		default:
			return 1
		}
	}

	ups, downs := 0, 0
	for i := 0; i < len(cv.Experience)-1; i++ {
		newer := rankOf(cv.Experience[i].Title)
		older := rankOf(cv.Experience[i+1].Title)
		switch {
		case newer > older:
			ups++
		case newer < older:
			downs++
		}
	}

	steps := len(cv.Experience) - 1
	return clamp01(0.4 + 0.6*float64(ups)/float64(steps) - 0.3*float64(downs)/float64(steps))
}

// stability rewards longer average tenure per position, on a 3-year scale.
func stability(cv *types.CV, totalYears float64) float64 {
	if len(cv.Experience) == 0 {
		return 0.3
	}
	avgTenure := totalYears / float64(len(cv.Experience))
	return clamp01(avgTenure / 3)
}

// adaptability rewards breadth: distinct companies and industries.
func adaptability(cv *types.CV) float64 {
	if len(cv.Experience) == 0 {
		return 0.3
	}
	companies := make(map[string]bool)
	industries := make(map[string]bool)
	for _, exp := range cv.Experience {
		if exp.Company != "" {
			companies[strings.ToLower(exp.Company)] = true
		}
		if exp.Industry != "" {
			industries[strings.ToLower(exp.Industry)] = true
		}
	}
	score := 0.2 + 0.15*float64(len(companies)) + 0.1*float64(len(industries))
	return clamp01(score)
}

// termPresence scores how prominently a term set appears in titles,
// descriptions, and achievements.
func termPresence(cv *types.CV, terms []string) float64 {
	var sb strings.Builder
	for _, exp := range cv.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
		sb.WriteString(" ")
		for _, a := range exp.Achievements {
			sb.WriteString(a)
			sb.WriteString(" ")
		}
	}
	lower := strings.ToLower(sb.String())

	hits := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return clamp01(float64(hits) / 4)
}

// innovationIndicator blends innovation wording with project portfolio depth.
func innovationIndicator(cv *types.CV) float64 {
	score := termPresence(cv, innovationTerms)
	score += 0.1 * float64(len(cv.Projects))
	return clamp01(score)
}
