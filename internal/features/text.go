package features

import (
	"strings"
	"time"

	"github.com/jonathan/success-predictor/internal/types"
)

// stopwords are excluded from token overlap so function words never count as
// keyword matches.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "in": true, "is": true,
	"it": true, "of": true, "on": true, "or": true, "our": true, "the": true,
	"to": true, "we": true, "with": true, "you": true, "your": true, "will": true,
	"have": true, "has": true, "this": true, "that": true,
}

// normalizeToken lowercases a token and strips surrounding punctuation.
func normalizeToken(tok string) string {
	return strings.Trim(strings.ToLower(tok), ".,;:()[]{}\"'!?/")
}

// tokenSet builds a set of normalized, non-stopword tokens from free text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		n := normalizeToken(tok)
		if n == "" || stopwords[n] {
			continue
		}
		set[n] = true
	}
	return set
}

// tokenOverlap returns the fraction of want tokens present in have, in [0,1].
func tokenOverlap(want, have map[string]bool) float64 {
	if len(want) == 0 {
		return 0
	}
	matches := 0
	for tok := range want {
		if have[tok] {
			matches++
		}
	}
	return float64(matches) / float64(len(want))
}

// degreeRank maps degree names to numeric ranks for comparison.
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"bachelors": 2,
	"bsc":       2,
	"ba":        2,
	"bs":        2,
	"master":    3,
	"masters":   3,
	"msc":       3,
	"mba":       3,
	"ms":        3,
	"phd":       4,
	"doctorate": 4,
}

// DegreeRank returns the numeric rank for a degree string, matching loosely
// against known degree names. A string containing several known names (an
// "MBA" also contains "ba") ranks as the highest match. Unknown degrees rank 0.
func DegreeRank(degree string) int {
	lower := strings.ToLower(degree)
	if rank, ok := degreeRank[lower]; ok {
		return rank
	}
	best := 0
	for name, rank := range degreeRank {
		if rank > best && strings.Contains(lower, name) {
			best = rank
		}
	}
	return best
}

// HighestDegreeRank returns the best degree rank on the CV.
func HighestDegreeRank(cv *types.CV) int {
	best := 0
	for _, edu := range cv.Education {
		if r := DegreeRank(edu.Degree); r > best {
			best = r
		}
	}
	return best
}

// dateLayout is the résumé date format used throughout.
const dateLayout = "2006-01"

// parseRange returns the duration of an experience entry in years. Open-ended
// entries ("present" or empty end date) run to now. Unparseable dates
// contribute zero.
func parseRange(entry types.ExperienceEntry, now time.Time) float64 {
	start, err := time.Parse(dateLayout, entry.StartDate)
	if err != nil {
		return 0
	}

	end := now
	if entry.EndDate != "" && !strings.EqualFold(entry.EndDate, "present") {
		parsed, err := time.Parse(dateLayout, entry.EndDate)
		if err != nil {
			return 0
		}
		end = parsed
	}

	years := end.Sub(start).Hours() / (24 * 365.25)
	if years < 0 {
		return 0
	}
	return years
}

// TotalExperienceYears sums the duration of all experience entries.
// Overlapping positions are counted independently, matching how candidates
// report concurrent roles.
func TotalExperienceYears(cv *types.CV) float64 {
	now := time.Now()
	total := 0.0
	for _, entry := range cv.Experience {
		total += parseRange(entry, now)
	}
	return total
}

// clamp01 bounds a value to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
