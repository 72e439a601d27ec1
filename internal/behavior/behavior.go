// Package behavior turns a user's historical application activity into the
// behavioral feature group. History lives in an external store; results are
// cached briefly because behavior shifts much faster than CV content.
package behavior

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/success-predictor/internal/cache"
	"github.com/jonathan/success-predictor/internal/features"
	"github.com/jonathan/success-predictor/internal/types"
)

// UsageRecord is one historical application event for a user.
type UsageRecord struct {
	JobID       string    `json:"job_id"`
	PostedAt    time.Time `json:"posted_at"`
	AppliedAt   time.Time `json:"applied_at"`
	Method      string    `json:"method"` // platform, email, referral, direct
	CVOptimized bool      `json:"cv_optimized"`
	Sessions    int       `json:"sessions"` // platform sessions in the 30 days before applying
}

// UsageStore loads a user's application history.
type UsageStore interface {
	GetUserApplications(ctx context.Context, userID string) ([]UsageRecord, error)
}

// featureTTL keeps computed behavior features fresh without re-reading history
// on every prediction.
const featureTTL = 30 * time.Minute

// methodCodes maps application channels to ordinal feature values. Referrals
// score highest; unknown channels fall back to the platform default.
var methodCodes = map[string]float64{
	"platform": 1,
	"email":    2,
	"direct":   3,
	"referral": 4,
}

// Extractor computes BehaviorFeatures from stored usage history.
type Extractor struct {
	store UsageStore
	cache cache.Store
}

// NewExtractor creates an extractor. A nil store means history is unavailable
// and every user gets the fallback profile.
func NewExtractor(store UsageStore) *Extractor {
	return &Extractor{
		store: store,
		cache: cache.NewMemoryStore(0),
	}
}

// Features returns the behavioral feature group for userID. It never fails:
// a missing store, a store error, or an empty history all produce the
// documented fallback profile.
func (e *Extractor) Features(ctx context.Context, userID string) types.BehaviorFeatures {
	key := "behavior_" + userID
	if v, ok := e.cache.Get(key); ok {
		if bf, ok := v.(types.BehaviorFeatures); ok {
			return bf
		}
	}

	bf := e.compute(ctx, userID)
	e.cache.Set(key, bf, userID, featureTTL)
	return bf
}

// InvalidateUser drops the cached profile so the next lookup recomputes it.
func (e *Extractor) InvalidateUser(userID string) {
	e.cache.InvalidateUser(userID)
}

// Close stops the profile cache's background sweeper.
func (e *Extractor) Close() {
	if s, ok := e.cache.(*cache.MemoryStore); ok {
		s.Close()
	}
}

func (e *Extractor) compute(ctx context.Context, userID string) types.BehaviorFeatures {
	if e.store == nil {
		return features.FallbackBehavior()
	}
	records, err := e.store.GetUserApplications(ctx, userID)
	if err != nil || len(records) == 0 {
		return features.FallbackBehavior()
	}

	var (
		timingSum   float64
		weekdaySum  float64
		hourSum     float64
		methodSum   float64
		optimized   float64
		sessionsSum float64
	)
	for _, r := range records {
		timingSum += r.AppliedAt.Sub(r.PostedAt).Hours() / 24
		if wd := r.AppliedAt.Weekday(); wd >= time.Monday && wd <= time.Friday {
			weekdaySum++
		}
		hourSum += float64(r.AppliedAt.Hour())
		methodSum += methodCode(r.Method)
		if r.CVOptimized {
			optimized++
		}
		sessionsSum += float64(r.Sessions)
	}
	n := float64(len(records))

	return types.BehaviorFeatures{
		ApplicationTiming:  timingSum / n,
		WeekdayApplication: weekdaySum / n,
		HourOfDay:          hourSum / n,
		ApplicationMethod:  methodSum / n,
		CVOptimization:     optimized / n,
		PlatformEngagement: clampOne(sessionsSum / n / 30),
		PriorApplications:  n,
	}
}

func methodCode(method string) float64 {
	if c, ok := methodCodes[strings.ToLower(method)]; ok {
		return c
	}
	return methodCodes["platform"]
}

func clampOne(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
