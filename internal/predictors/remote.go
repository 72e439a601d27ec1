package predictors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/success-predictor/internal/types"
)

// RemoteTimeout is the hard cap on a single remote scoring call. No retries:
// a failed attempt falls straight to the heuristic tier.
const RemoteTimeout = 10 * time.Second

// maxResponseBytes bounds how much of a scoring response is read.
const maxResponseBytes = 1 << 20

// RemoteScorer calls the external scoring service. Every method degrades
// softly: nil means "no usable remote answer", never an error, so predictors
// fall through to their heuristics without branching on failure kinds.
type RemoteScorer struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewRemoteScorer creates a scorer for the given endpoint. An empty endpoint
// or key short-circuits every call to nil without any network activity.
func NewRemoteScorer(endpoint, apiKey string) *RemoteScorer {
	return &RemoteScorer{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: RemoteTimeout},
	}
}

// Configured reports whether remote scoring is enabled at all.
func (r *RemoteScorer) Configured() bool {
	return r != nil && r.endpoint != "" && r.apiKey != ""
}

// post sends the feature vector to {endpoint}/predict/{outcome} and decodes
// the response into out. Any failure returns false.
func (r *RemoteScorer) post(ctx context.Context, outcome string, fv *types.FeatureVector, out any) bool {
	if !r.Configured() {
		return false
	}

	body, err := json.Marshal(map[string]any{"features": fv})
	if err != nil {
		return false
	}

	url := fmt.Sprintf("%s/predict/%s", r.endpoint, outcome)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// Probability requests a probability score for an outcome ("interview" or
// "offer"). The result is clamped to [0,1]. Nil means fall back to heuristic.
func (r *RemoteScorer) Probability(ctx context.Context, outcome string, fv *types.FeatureVector) *float64 {
	var payload struct {
		Probability *float64 `json:"probability"`
	}
	if !r.post(ctx, outcome, fv, &payload) || payload.Probability == nil {
		return nil
	}
	p := clamp(*payload.Probability, 0, 1)
	return &p
}

// Salary requests a structured salary estimate. Nil means fall back to heuristic.
func (r *RemoteScorer) Salary(ctx context.Context, fv *types.FeatureVector) *types.SalaryPrediction {
	var payload struct {
		Salary *types.SalaryPrediction `json:"salary"`
	}
	if !r.post(ctx, "salary", fv, &payload) || payload.Salary == nil {
		return nil
	}
	if payload.Salary.Median <= 0 {
		return nil
	}
	return payload.Salary
}

// Timeline requests a structured time-to-hire estimate. Nil means fall back
// to heuristic.
func (r *RemoteScorer) Timeline(ctx context.Context, fv *types.FeatureVector) *types.TimeToHire {
	var payload struct {
		TimeToHire *types.TimeToHire `json:"time_to_hire"`
	}
	if !r.post(ctx, "time-to-hire", fv, &payload) || payload.TimeToHire == nil {
		return nil
	}
	if payload.TimeToHire.MedianDays <= 0 {
		return nil
	}
	return payload.TimeToHire
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
