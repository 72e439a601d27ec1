// Package prediction orchestrates the full scoring pipeline: request
// validation, cache lookup, feature extraction, the four outcome predictors,
// recommendation generation, and the degradation chain when the primary path
// fails. The only error a caller ever sees is request validation; everything
// downstream degrades to a lower-confidence prediction instead.
package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/success-predictor/internal/behavior"
	"github.com/jonathan/success-predictor/internal/cache"
	"github.com/jonathan/success-predictor/internal/fallback"
	"github.com/jonathan/success-predictor/internal/features"
	"github.com/jonathan/success-predictor/internal/llm"
	"github.com/jonathan/success-predictor/internal/predictors"
	"github.com/jonathan/success-predictor/internal/recommend"
	"github.com/jonathan/success-predictor/internal/types"
)

// Per-facet confidence assigned by provenance: remote model answers carry more
// weight than deterministic heuristics.
const (
	remoteConfidence    = 0.85
	heuristicConfidence = 0.7
)

// Config wires the engine's external dependencies. Every field is optional:
// the zero Config yields a fully working heuristic-only engine with an
// in-memory cache.
type Config struct {
	// ScoringEndpoint and ScoringAPIKey enable the remote scoring service.
	// Both must be set; otherwise every predictor runs heuristic-only.
	ScoringEndpoint string
	ScoringAPIKey   string
	// Cache overrides the default in-memory prediction cache.
	Cache *cache.PredictionCache
	// UsageStore supplies application history for behavioral features.
	UsageStore behavior.UsageStore
	// LLMClient enables natural-language polish on recommendations.
	LLMClient llm.Client
}

// Predictor interfaces, satisfied by the concrete predictors and replaceable
// in tests to exercise the degradation path.
type probabilityPredictor interface {
	Predict(ctx context.Context, fv *types.FeatureVector) (predictors.Result, error)
}

type salaryPredictor interface {
	Predict(ctx context.Context, fv *types.FeatureVector) (predictors.SalaryResult, error)
}

type timelinePredictor interface {
	Predict(ctx context.Context, fv *types.FeatureVector) (predictors.TimelineResult, error)
}

// Engine is the prediction orchestrator.
type Engine struct {
	validate *validator.Validate
	cache    *cache.PredictionCache
	features *features.Extractor
	behavior *behavior.Extractor
	enhancer *recommend.Enhancer
	chain    *fallback.Manager

	interview probabilityPredictor
	offer     probabilityPredictor
	salary    salaryPredictor
	timeline  timelinePredictor
}

// NewEngine builds an engine from the given configuration.
func NewEngine(cfg Config) *Engine {
	c := cfg.Cache
	if c == nil {
		c = cache.New(nil, nil)
	}
	remote := predictors.NewRemoteScorer(cfg.ScoringEndpoint, cfg.ScoringAPIKey)

	return &Engine{
		validate:  validator.New(),
		cache:     c,
		features:  features.NewExtractor(c),
		behavior:  behavior.NewExtractor(cfg.UsageStore),
		enhancer:  recommend.NewEnhancer(cfg.LLMClient),
		chain:     fallback.NewManager(),
		interview: predictors.NewInterviewPredictor(remote),
		offer:     predictors.NewOfferPredictor(remote),
		salary:    predictors.NewSalaryPredictor(remote),
		timeline:  predictors.NewTimeToHirePredictor(remote),
	}
}

// PredictSuccess scores one application event. Validation failure is the only
// error path; a failing or panicking primary pipeline degrades through the
// fallback chain and still returns a complete prediction.
func (e *Engine) PredictSuccess(ctx context.Context, req *types.PredictionRequest) (*types.SuccessPrediction, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid prediction request: %w", err)
	}

	if cached := e.cache.Get(req); cached != nil {
		return cached, nil
	}

	pred, err := e.runPrimary(ctx, req)
	if err != nil {
		// Degraded answers get the short TTL so the primary path is retried
		// well before a full-quality prediction would expire.
		pred = e.chain.Predict(ctx, req)
		e.cache.SetDegraded(req, pred)
		return pred, nil
	}

	e.cache.Set(req, pred)
	return pred, nil
}

// InvalidateUser drops every cached prediction, feature vector, and behavior
// profile for the user. Returns the number of cache entries removed.
func (e *Engine) InvalidateUser(userID string) int {
	e.behavior.InvalidateUser(userID)
	return e.cache.InvalidateUser(userID)
}

// CacheStats reports counters for the prediction and feature cache tiers.
func (e *Engine) CacheStats() (predictions, features cache.Stats) {
	return e.cache.Stats()
}

// Close stops the background sweepers on the engine's caches.
func (e *Engine) Close() {
	e.cache.Close()
	e.behavior.Close()
}

// ExtractFeatures exposes the feature vector for a request without running
// the predictors, for inspection tooling.
func (e *Engine) ExtractFeatures(ctx context.Context, req *types.PredictionRequest) *types.FeatureVector {
	fv := e.features.ExtractFeatures(ctx, req)
	fv.BehaviorFeatures = e.behavior.Features(ctx, req.UserID)
	return fv
}

// runPrimary executes the full pipeline. A panic anywhere inside surfaces as
// an error so the caller can degrade through the chain.
func (e *Engine) runPrimary(ctx context.Context, req *types.PredictionRequest) (pred *types.SuccessPrediction, err error) {
	defer func() {
		if r := recover(); r != nil {
			pred = nil
			err = fmt.Errorf("primary pipeline panic: %v", r)
		}
	}()

	fv := e.features.ExtractFeatures(ctx, req)
	fv.BehaviorFeatures = e.behavior.Features(ctx, req.UserID)

	var (
		interviewR predictors.Result
		offerR     predictors.Result
		salaryR    predictors.SalaryResult
		timelineR  predictors.TimelineResult
	)

	// Each predictor runs in its own goroutine, so each call carries its own
	// panic guard; the deferred recover above cannot see into them.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(guarded("interview prediction", func() error {
		r, err := e.interview.Predict(gctx, fv)
		if err != nil {
			return fmt.Errorf("interview prediction: %w", err)
		}
		interviewR = r
		return nil
	}))
	g.Go(guarded("offer prediction", func() error {
		r, err := e.offer.Predict(gctx, fv)
		if err != nil {
			return fmt.Errorf("offer prediction: %w", err)
		}
		offerR = r
		return nil
	}))
	g.Go(guarded("salary prediction", func() error {
		r, err := e.salary.Predict(gctx, fv)
		if err != nil {
			return fmt.Errorf("salary prediction: %w", err)
		}
		salaryR = r
		return nil
	}))
	g.Go(guarded("timeline prediction", func() error {
		r, err := e.timeline.Predict(gctx, fv)
		if err != nil {
			return fmt.Errorf("timeline prediction: %w", err)
		}
		timelineR = r
		return nil
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return e.assemble(ctx, req, fv, interviewR, offerR, salaryR, timelineR), nil
}

// assemble builds the final prediction from predictor outputs.
func (e *Engine) assemble(
	ctx context.Context,
	req *types.PredictionRequest,
	fv *types.FeatureVector,
	interviewR, offerR predictors.Result,
	salaryR predictors.SalaryResult,
	timelineR predictors.TimelineResult,
) *types.SuccessPrediction {
	recs := recommend.Generate(fv, req.CV)
	recs = e.enhancer.Enhance(ctx, recs, req.TargetRole)

	conf := types.Confidence{
		Interview:  facetConfidence(interviewR.Remote),
		Offer:      facetConfidence(offerR.Remote),
		Salary:     facetConfidence(salaryR.Remote),
		TimeToHire: facetConfidence(timelineR.Remote),
	}
	conf.Overall = (conf.Interview + conf.Offer + conf.Salary + conf.TimeToHire) / 4

	anyRemote := interviewR.Remote || offerR.Remote || salaryR.Remote || timelineR.Remote

	return &types.SuccessPrediction{
		PredictionID:         uuid.NewString(),
		UserID:               req.UserID,
		JobID:                req.JobID,
		Timestamp:            time.Now(),
		InterviewProbability: interviewR.Probability,
		OfferProbability:     offerR.Probability,
		HireProbability:      offerR.Probability * 0.8,
		SalaryPrediction:     salaryR.Prediction,
		TimeToHire:           timelineR.Prediction,
		CompetitivenessScore: competitiveness(fv),
		Confidence:           conf,
		Recommendations:      recs,
		ModelMetadata: types.ModelMetadata{
			ModelVersion: modelVersion(anyRemote),
			FeaturesUsed: []string{"cv", "matching", "market", "behavior", "derived"},
		},
	}
}

// competitiveness summarizes how the candidate stacks against the typical
// applicant pool for this role, on a 0-100 scale.
func competitiveness(fv *types.FeatureVector) float64 {
	m := fv.MatchingFeatures
	d := fv.DerivedFeatures
	quality := (fv.CVFeatures.ReadabilityScore + fv.CVFeatures.FormattingScore) / 200

	score := 100 * (0.40*m.SkillMatch +
		0.25*m.ExperienceRelevance +
		0.15*d.CareerProgression +
		0.10*m.EducationMatch +
		0.10*quality)
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// guarded converts a panic inside an errgroup goroutine into an error.
func guarded(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panic: %v", name, r)
			}
		}()
		return fn()
	}
}

func facetConfidence(remote bool) float64 {
	if remote {
		return remoteConfidence
	}
	return heuristicConfidence
}

func modelVersion(anyRemote bool) string {
	if anyRemote {
		return "remote+" + predictors.CoefficientsVersion
	}
	return predictors.CoefficientsVersion
}
