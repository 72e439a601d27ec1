package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/success-predictor/internal/llm"
	"github.com/jonathan/success-predictor/internal/types"
)

// Enhancer rewrites rule-generated recommendation text with an LLM so the
// advice reads naturally. Enhancement is strictly best-effort: any failure
// returns the input unchanged, and priorities, categories, and impact levels
// are never altered.
type Enhancer struct {
	client llm.Client
}

// NewEnhancer creates an enhancer. A nil client disables enhancement.
func NewEnhancer(client llm.Client) *Enhancer {
	return &Enhancer{client: client}
}

// Enhance returns the recommendations with polished message text, or the
// input unchanged when no client is configured or the call fails.
func (e *Enhancer) Enhance(ctx context.Context, recs []types.Recommendation, targetRole string) []types.Recommendation {
	if e.client == nil || len(recs) == 0 {
		return recs
	}

	raw, err := e.client.GenerateJSON(ctx, enhancePrompt(recs, targetRole), llm.TierLite)
	if err != nil {
		return recs
	}

	var messages []string
	if err := json.Unmarshal([]byte(raw), &messages); err != nil || len(messages) != len(recs) {
		return recs
	}

	out := make([]types.Recommendation, len(recs))
	copy(out, recs)
	for i, m := range messages {
		m = strings.TrimSpace(m)
		if m == "" {
			return recs
		}
		out[i].Message = m
	}
	return out
}

func enhancePrompt(recs []types.Recommendation, targetRole string) string {
	var b strings.Builder
	b.WriteString("Rewrite each CV recommendation below as one clear, encouraging sentence")
	if targetRole != "" {
		fmt.Fprintf(&b, " for a candidate targeting a %s role", targetRole)
	}
	b.WriteString(". Keep the concrete advice intact. Return a JSON array of strings, same order, same length, nothing else.\n\n")
	for i, r := range recs {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, r.Category, r.Message)
	}
	return b.String()
}
