// Package fallback provides the pipeline-level degradation chain: when the
// primary prediction path fails, an ordered list of named strategies runs
// until one produces a structurally complete prediction. The final strategy
// cannot fail, so the chain always yields a result.
package fallback

import (
	"context"

	"github.com/jonathan/success-predictor/internal/types"
)

// Strategy is one tier of the degradation chain.
type Strategy interface {
	Name() string
	Predict(ctx context.Context, req *types.PredictionRequest) (*types.SuccessPrediction, error)
}

// Manager executes strategies in order until one succeeds.
type Manager struct {
	strategies []Strategy
}

// NewManager builds the default chain: full heuristic, then minimal.
func NewManager() *Manager {
	return &Manager{strategies: []Strategy{NewHeuristicStrategy(), NewMinimalStrategy()}}
}

// NewManagerWith builds a chain from explicit strategies, in order.
func NewManagerWith(strategies ...Strategy) *Manager {
	return &Manager{strategies: strategies}
}

// Predict runs the chain and returns the first successful prediction. The
// minimal tier performs no I/O and cannot fail, so the trailing direct call
// is unreachable when it is in the chain; it exists so a custom chain of
// failing strategies still cannot return nil.
func (m *Manager) Predict(ctx context.Context, req *types.PredictionRequest) *types.SuccessPrediction {
	for _, s := range m.strategies {
		if p, err := s.Predict(ctx, req); err == nil && p != nil {
			return p
		}
	}
	return minimalPrediction(req)
}
