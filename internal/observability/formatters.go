// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/success-predictor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFeatureVector outputs a human-readable summary of the extracted features.
func (p *Printer) PrintFeatureVector(fv *types.FeatureVector) {
	if fv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:      %s\n", fv.UserID))
	sb.WriteString(fmt.Sprintf("Job:       %s\n", fv.JobID))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", fv.Industry))
	sb.WriteString("\n")

	sb.WriteString("CV:\n")
	sb.WriteString(fmt.Sprintf("  • %.0f words, %.0f skills, %.1f years\n",
		fv.CVFeatures.WordCount, fv.CVFeatures.SkillCount, fv.CVFeatures.ExperienceYears))
	sb.WriteString(fmt.Sprintf("  • readability %.0f, formatting %.0f\n",
		fv.CVFeatures.ReadabilityScore, fv.CVFeatures.FormattingScore))
	sb.WriteString("\n")

	sb.WriteString("Matching:\n")
	sb.WriteString(fmt.Sprintf("  • skills %.2f, experience %.2f\n",
		fv.MatchingFeatures.SkillMatch, fv.MatchingFeatures.ExperienceRelevance))
	sb.WriteString(fmt.Sprintf("  • education %.2f, salary %.2f\n",
		fv.MatchingFeatures.EducationMatch, fv.MatchingFeatures.SalaryAlignment))
	sb.WriteString("\n")

	sb.WriteString("Market:\n")
	sb.WriteString(fmt.Sprintf("  • growth %.2f, demand/supply %.2f\n",
		fv.MarketFeatures.IndustryGrowth, fv.MarketFeatures.DemandSupplyRatio))

	p.printBox("EXTRACTED FEATURES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrediction outputs the assembled prediction in a readable box.
func (p *Printer) PrintPrediction(pred *types.SuccessPrediction) {
	if pred == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Interview:  %5.1f%%\n", pred.InterviewProbability*100))
	sb.WriteString(fmt.Sprintf("Offer:      %5.1f%%\n", pred.OfferProbability*100))
	sb.WriteString(fmt.Sprintf("Hire:       %5.1f%%\n", pred.HireProbability*100))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Salary:     %.0f (range %.0f-%.0f)\n",
		pred.SalaryPrediction.Median, pred.SalaryPrediction.Min, pred.SalaryPrediction.Max))
	sb.WriteString(fmt.Sprintf("Timeline:   %.0f days (range %.0f-%.0f)\n",
		pred.TimeToHire.MedianDays, pred.TimeToHire.MinDays, pred.TimeToHire.MaxDays))
	sb.WriteString(fmt.Sprintf("Standing:   %.0f/100\n", pred.CompetitivenessScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Confidence: %.2f (%s)\n", pred.Confidence.Overall, pred.ModelMetadata.ModelVersion))

	p.printBox("SUCCESS PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the improvement suggestions, highest impact first.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		//nolint:errcheck // writing to stdout; errors are not recoverable
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO RECOMMENDATIONS — STRONG APPLICATION")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := recs[i]
		msg := r.Message
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. [%s/%s]\n", r.Priority, r.Category, r.Impact))
		sb.WriteString(fmt.Sprintf("   %s\n", msg))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintFeatureImportance outputs explanation weights, heaviest first.
func (p *Printer) PrintFeatureImportance(importance map[string]float64) {
	if len(importance) == 0 {
		return
	}

	type weighted struct {
		name   string
		weight float64
	}
	ordered := make([]weighted, 0, len(importance))
	for name, w := range importance {
		ordered = append(ordered, weighted{name: name, weight: w})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].weight == ordered[j].weight {
			return ordered[i].name < ordered[j].name
		}
		return ordered[i].weight > ordered[j].weight
	})

	var sb strings.Builder
	for i, w := range ordered {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(ordered)-maxItemsToShow))
			break
		}
		bar := strings.Repeat("█", int(w.weight*20))
		sb.WriteString(fmt.Sprintf("%-22s %-8s %.2f\n", w.name, bar, w.weight))
	}

	p.printBox("FEATURE IMPORTANCE", strings.TrimSuffix(sb.String(), "\n"))
}
