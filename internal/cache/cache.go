package cache

import (
	"time"

	"github.com/jonathan/success-predictor/internal/types"
)

const (
	// PredictionTTL bounds how long an assembled prediction stays valid.
	PredictionTTL = 24 * time.Hour
	// FeatureTTL bounds how long an extracted feature vector stays valid.
	// Features age faster than predictions: market inputs drift.
	FeatureTTL = 6 * time.Hour
	// DegradedTTL bounds predictions produced by the fallback chain. A
	// transient outage must not pin a low-confidence answer for a full day.
	DegradedTTL = 1 * time.Hour
)

// PredictionCache is the two-tier cache in front of the prediction pipeline:
// one namespace for assembled predictions (24h TTL) and one for extracted
// feature vectors (6h TTL), each behind its own Store.
type PredictionCache struct {
	predictions Store
	features    Store
}

// New creates a PredictionCache over the given stores. Nil stores default to
// bounded in-memory stores.
func New(predictions, features Store) *PredictionCache {
	if predictions == nil {
		predictions = NewMemoryStore(DefaultMaxEntries)
	}
	if features == nil {
		features = NewMemoryStore(DefaultMaxEntries)
	}
	return &PredictionCache{predictions: predictions, features: features}
}

// Get returns the cached prediction for the request, or nil on a miss.
func (c *PredictionCache) Get(req *types.PredictionRequest) *types.SuccessPrediction {
	v, ok := c.predictions.Get(PredictionKey(req))
	if !ok {
		return nil
	}
	p, ok := v.(*types.SuccessPrediction)
	if !ok {
		return nil
	}
	return p
}

// Set caches an assembled prediction for the request.
func (c *PredictionCache) Set(req *types.PredictionRequest, p *types.SuccessPrediction) {
	c.predictions.Set(PredictionKey(req), p, req.UserID, PredictionTTL)
}

// SetDegraded caches a fallback-chain prediction under the shorter DegradedTTL
// so it gets re-attempted well before a full-quality prediction would expire.
func (c *PredictionCache) SetDegraded(req *types.PredictionRequest, p *types.SuccessPrediction) {
	c.predictions.Set(PredictionKey(req), p, req.UserID, DegradedTTL)
}

// GetFeatures returns the cached feature vector for the request, or nil on a miss.
func (c *PredictionCache) GetFeatures(req *types.PredictionRequest) *types.FeatureVector {
	v, ok := c.features.Get(FeatureKey(req))
	if !ok {
		return nil
	}
	fv, ok := v.(*types.FeatureVector)
	if !ok {
		return nil
	}
	return fv
}

// SetFeatures caches an extracted feature vector for the request.
func (c *PredictionCache) SetFeatures(req *types.PredictionRequest, fv *types.FeatureVector) {
	c.features.Set(FeatureKey(req), fv, req.UserID, FeatureTTL)
}

// InvalidateUser removes every cached prediction and feature vector belonging
// to the user, leaving other users' entries untouched. Returns the total
// number of entries removed.
func (c *PredictionCache) InvalidateUser(userID string) int {
	return c.predictions.InvalidateUser(userID) + c.features.InvalidateUser(userID)
}

// Clear empties both cache tiers.
func (c *PredictionCache) Clear() {
	c.predictions.Clear()
	c.features.Clear()
}

// Close stops background maintenance on both tiers when the backing stores
// run any.
func (c *PredictionCache) Close() {
	if s, ok := c.predictions.(*MemoryStore); ok {
		s.Close()
	}
	if s, ok := c.features.(*MemoryStore); ok {
		s.Close()
	}
}

// Stats reports counters for both tiers when the backing stores support them.
func (c *PredictionCache) Stats() (predictions, features Stats) {
	if s, ok := c.predictions.(*MemoryStore); ok {
		predictions = s.Stats()
	}
	if s, ok := c.features.(*MemoryStore); ok {
		features = s.Stats()
	}
	return predictions, features
}
