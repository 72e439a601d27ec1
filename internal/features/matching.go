package features

import (
	"strings"

	"github.com/jonathan/success-predictor/internal/types"
)

// seniorityTerms signal role level in titles, used for title comparison.
var seniorityTerms = []string{"intern", "junior", "senior", "staff", "principal", "lead", "head", "director", "vp", "chief"}

// ExtractMatchingFeatures measures candidate/job fit. Every output is in [0,1].
func ExtractMatchingFeatures(req *types.PredictionRequest) (types.MatchingFeatures, error) {
	cv := req.CV
	jobTokens := tokenSet(req.JobDescription)

	f := types.MatchingFeatures{
		SkillMatch:          skillMatchScore(cv.Skills, jobTokens),
		ExperienceRelevance: experienceRelevanceScore(cv, req.TargetRole, jobTokens),
		EducationMatch:      educationMatchScore(cv, req.JobDescription),
		IndustryExperience:  industryExperienceScore(cv, req.Industry),
		LocationMatch:       locationMatchScore(cv.Location, req.Location),
		SalaryAlignment:     salaryAlignmentScore(cv.DesiredSalary, req.Industry),
		TitleSimilarity:     titleSimilarityScore(cv, req.TargetRole),
		CompanyFit:          companyFitScore(cv, jobTokens),
	}
	return f, nil
}

// skillMatchScore is the fraction of CV skills mentioned in the job description.
func skillMatchScore(skills []string, jobTokens map[string]bool) float64 {
	if len(skills) == 0 {
		return 0
	}
	matches := 0
	for _, skill := range skills {
		hit := true
		// Multi-word skills match only when every word appears.
		for _, part := range strings.Fields(skill) {
			if !jobTokens[normalizeToken(part)] {
				hit = false
				break
			}
		}
		if hit {
			matches++
		}
	}
	return float64(matches) / float64(len(skills))
}

// experienceRelevanceScore blends total tenure against a 10-year scale with
// how much of the described work overlaps the job posting.
func experienceRelevanceScore(cv *types.CV, targetRole string, jobTokens map[string]bool) float64 {
	years := TotalExperienceYears(cv)
	tenure := years / 10
	if tenure > 1 {
		tenure = 1
	}

	var descTokens map[string]bool
	var sb strings.Builder
	for _, exp := range cv.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
		sb.WriteString(" ")
	}
	if targetRole != "" {
		sb.WriteString(targetRole)
	}
	descTokens = tokenSet(sb.String())

	overlap := tokenOverlap(descTokens, jobTokens)
	return clamp01(tenure*0.6 + overlap*0.4)
}

// educationMatchScore compares the best degree on the CV with the level the
// job description asks for. With no stated requirement, any degree scores 0.7.
func educationMatchScore(cv *types.CV, jobDescription string) float64 {
	cvRank := HighestDegreeRank(cv)
	reqRank := requiredDegreeRank(jobDescription)

	if reqRank == 0 {
		if cvRank > 0 {
			return 0.7
		}
		return 0.4
	}

	switch {
	case cvRank >= reqRank:
		return 1.0
	case cvRank == reqRank-1:
		return 0.5
	case cvRank > 0:
		return 0.25
	default:
		return 0
	}
}

// requiredDegreeRank scans the job description for degree mentions.
func requiredDegreeRank(jobDescription string) int {
	lower := strings.ToLower(jobDescription)
	best := 0
	for name, rank := range degreeRank {
		if strings.Contains(lower, name) && rank > best {
			best = rank
		}
	}
	return best
}

// industryExperienceScore is the fraction of positions in the target industry.
func industryExperienceScore(cv *types.CV, industry string) float64 {
	if industry == "" || len(cv.Experience) == 0 {
		return 0.3 // neutral when unknown
	}
	matches := 0
	for _, exp := range cv.Experience {
		if strings.EqualFold(exp.Industry, industry) {
			matches++
		}
	}
	return float64(matches) / float64(len(cv.Experience))
}

// locationMatchScore compares candidate and job locations.
func locationMatchScore(cvLocation, jobLocation string) float64 {
	if jobLocation == "" || cvLocation == "" {
		return 0.5 // neutral when either side is unknown
	}
	cvLower := strings.ToLower(cvLocation)
	jobLower := strings.ToLower(jobLocation)
	switch {
	case cvLower == jobLower:
		return 1.0
	case strings.Contains(cvLower, jobLower) || strings.Contains(jobLower, cvLower):
		return 0.8
	default:
		return 0.2
	}
}

// salaryAlignmentScore compares the candidate's desired salary against the
// industry's typical level. Asking at or below market aligns best.
func salaryAlignmentScore(desired float64, industry string) float64 {
	if desired <= 0 {
		return 0.5 // unknown expectations
	}
	typical := typicalSalary(industry)
	ratio := desired / typical
	switch {
	case ratio <= 1.0:
		return 1.0
	case ratio <= 1.15:
		return 0.8
	case ratio <= 1.35:
		return 0.5
	default:
		return 0.2
	}
}

// titleSimilarityScore is the token overlap between the most recent title and
// the target role, with a penalty when seniority levels diverge.
func titleSimilarityScore(cv *types.CV, targetRole string) float64 {
	if targetRole == "" || len(cv.Experience) == 0 {
		return 0.3
	}
	latest := cv.Experience[0].Title
	overlap := tokenOverlap(tokenSet(targetRole), tokenSet(latest))

	if seniorityOf(latest) != seniorityOf(targetRole) {
		overlap *= 0.8
	}
	return clamp01(overlap)
}

func seniorityOf(title string) string {
	lower := strings.ToLower(title)
	for _, term := range seniorityTerms {
		if strings.Contains(lower, term) {
			return term
		}
	}
	return ""
}

// companyFitScore looks for value and culture terms the posting emphasizes
// appearing in the candidate's own summary and achievements.
func companyFitScore(cv *types.CV, jobTokens map[string]bool) float64 {
	cultureTerms := []string{"team", "collaboration", "ownership", "impact", "growth", "mentoring", "agile", "remote"}
	emphasized := 0
	matched := 0

	cvTokens := tokenSet(cvText(cv))
	for _, term := range cultureTerms {
		if jobTokens[term] {
			emphasized++
			if cvTokens[term] {
				matched++
			}
		}
	}
	if emphasized == 0 {
		return 0.5 // posting gives no cultural signal
	}
	return 0.3 + 0.7*float64(matched)/float64(emphasized)
}
