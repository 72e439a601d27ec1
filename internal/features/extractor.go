package features

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/success-predictor/internal/cache"
	"github.com/jonathan/success-predictor/internal/types"
)

// Extractor assembles complete feature vectors. CV, matching, and market
// extraction run concurrently; derived extraction is a dependent sequential
// continuation. Extraction never fails from the caller's point of view: any
// error or panic yields the fixed fallback vector instead.
//
// The behavior group is owned by the behavior extractor, which is scoped per
// user rather than per request; this extractor fills the group with fallback
// constants and leaves the merge to higher-level callers.
type Extractor struct {
	cache *cache.PredictionCache

	// Sub-extractor hooks, replaceable in tests to inject failures.
	cvFn       func(*types.CV, string) (types.CVFeatures, error)
	matchingFn func(*types.PredictionRequest) (types.MatchingFeatures, error)
	marketFn   func(*types.PredictionRequest) (types.MarketFeatures, error)
	derivedFn  func(types.CVFeatures, types.MatchingFeatures, types.MarketFeatures, *types.PredictionRequest) (types.DerivedFeatures, error)
}

// NewExtractor creates a feature extractor backed by the given cache. A nil
// cache disables feature caching.
func NewExtractor(c *cache.PredictionCache) *Extractor {
	return &Extractor{
		cache:      c,
		cvFn:       ExtractCVFeatures,
		matchingFn: ExtractMatchingFeatures,
		marketFn:   ExtractMarketFeatures,
		derivedFn:  ExtractDerivedFeatures,
	}
}

// ExtractFeatures computes the feature vector for a request. It checks the
// feature cache first and writes the result back on a miss. It never returns
// an error and never panics.
func (e *Extractor) ExtractFeatures(ctx context.Context, req *types.PredictionRequest) (fv *types.FeatureVector) {
	defer func() {
		if r := recover(); r != nil {
			fv = FallbackVector(req)
		}
	}()

	if e.cache != nil {
		if cached := e.cache.GetFeatures(req); cached != nil {
			return vectorForRequest(cached, req)
		}
	}

	vector, err := e.extract(ctx, req)
	if err != nil {
		return FallbackVector(req)
	}

	if e.cache != nil {
		e.cache.SetFeatures(req, vector)
	}
	return vectorForRequest(vector, req)
}

// vectorForRequest returns a private copy of shared, stamped with the
// request's identity. Feature keys ignore user identity, so one cached vector
// can serve many users; handing out the cached pointer would let a caller's
// behavior-group merge write through to every other user of the entry.
func vectorForRequest(shared *types.FeatureVector, req *types.PredictionRequest) *types.FeatureVector {
	fv := *shared
	fv.UserID = req.UserID
	fv.JobID = req.JobID
	return &fv
}

// extract runs the fan-out/fan-in extraction pipeline.
func (e *Extractor) extract(ctx context.Context, req *types.PredictionRequest) (*types.FeatureVector, error) {
	if req.CV == nil {
		return nil, fmt.Errorf("request has no CV")
	}

	var (
		cvF     types.CVFeatures
		matchF  types.MatchingFeatures
		marketF types.MarketFeatures
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := e.cvFn(req.CV, req.JobDescription)
		if err != nil {
			return fmt.Errorf("cv extraction: %w", err)
		}
		cvF = f
		return nil
	})
	g.Go(func() error {
		f, err := e.matchingFn(req)
		if err != nil {
			return fmt.Errorf("matching extraction: %w", err)
		}
		matchF = f
		return nil
	})
	g.Go(func() error {
		f, err := e.marketFn(req)
		if err != nil {
			return fmt.Errorf("market extraction: %w", err)
		}
		marketF = f
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Derived features depend on the three groups above.
	derivedF, err := e.derivedFn(cvF, matchF, marketF, req)
	if err != nil {
		return nil, fmt.Errorf("derived extraction: %w", err)
	}

	industry := req.Industry
	if industry == "" {
		industry = "default"
	}

	return &types.FeatureVector{
		UserID:           req.UserID,
		JobID:            req.JobID,
		ExtractionDate:   time.Now(),
		Industry:         industry,
		CompanySize:      DetectCompanySize(req.JobDescription),
		CVFeatures:       cvF,
		MatchingFeatures: matchF,
		MarketFeatures:   marketF,
		BehaviorFeatures: FallbackBehavior(),
		DerivedFeatures:  derivedF,
	}, nil
}
