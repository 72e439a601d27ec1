package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/success-predictor/internal/types"
)

func samplePrediction(userID string) *types.SuccessPrediction {
	return &types.SuccessPrediction{
		PredictionID:         "p1",
		UserID:               userID,
		JobID:                "j1",
		InterviewProbability: 0.42,
		OfferProbability:     0.2,
		HireProbability:      0.16,
	}
}

func TestPredictionCache_MissForUnseenRequest(t *testing.T) {
	c := New(nil, nil)

	assert.Nil(t, c.Get(sampleRequest()))
	assert.Nil(t, c.GetFeatures(sampleRequest()))
}

func TestPredictionCache_SetThenGet(t *testing.T) {
	c := New(nil, nil)
	req := sampleRequest()
	p := samplePrediction(req.UserID)

	c.Set(req, p)

	got := c.Get(sampleRequest())
	require.NotNil(t, got)
	assert.Equal(t, p, got)
}

func TestPredictionCache_ExpiresAfterTTL(t *testing.T) {
	predictions := NewMemoryStore(100)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	predictions.now = func() time.Time { return base }
	c := New(predictions, nil)

	req := sampleRequest()
	c.Set(req, samplePrediction(req.UserID))

	require.NotNil(t, c.Get(req))

	// 24 hours later the entry is gone with no explicit cleanup call.
	predictions.now = func() time.Time { return base.Add(PredictionTTL + time.Minute) }
	assert.Nil(t, c.Get(req))
}

func TestPredictionCache_DegradedEntryExpiresSooner(t *testing.T) {
	predictions := NewMemoryStore(100)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	predictions.now = func() time.Time { return base }
	c := New(predictions, nil)

	req := sampleRequest()
	c.SetDegraded(req, samplePrediction(req.UserID))
	require.NotNil(t, c.Get(req))

	// Gone after the degraded TTL, long before a full-quality entry would be.
	predictions.now = func() time.Time { return base.Add(DegradedTTL + time.Minute) }
	assert.Nil(t, c.Get(req))
}

func TestPredictionCache_CloseStopsBothTiers(t *testing.T) {
	c := New(nil, nil)

	c.Close()
	c.Close()
}

func TestPredictionCache_FeatureRoundTrip(t *testing.T) {
	c := New(nil, nil)
	req := sampleRequest()
	fv := &types.FeatureVector{UserID: req.UserID, JobID: req.JobID}

	c.SetFeatures(req, fv)

	got := c.GetFeatures(sampleRequest())
	require.NotNil(t, got)
	assert.Equal(t, fv, got)
}

func TestPredictionCache_InvalidateUser(t *testing.T) {
	c := New(nil, nil)

	reqU1 := sampleRequest()
	c.Set(reqU1, samplePrediction("u1"))
	c.SetFeatures(reqU1, &types.FeatureVector{UserID: "u1", JobID: "j1"})

	reqU2 := sampleRequest()
	reqU2.UserID = "u2"
	reqU2.JobID = "j2"
	c.Set(reqU2, samplePrediction("u2"))

	removed := c.InvalidateUser("u1")

	assert.Equal(t, 2, removed)
	assert.Nil(t, c.Get(reqU1))
	assert.Nil(t, c.GetFeatures(reqU1))
	assert.NotNil(t, c.Get(reqU2))
}

func TestPredictionCache_Clear(t *testing.T) {
	c := New(nil, nil)
	req := sampleRequest()
	c.Set(req, samplePrediction(req.UserID))
	c.SetFeatures(req, &types.FeatureVector{UserID: req.UserID})

	c.Clear()

	assert.Nil(t, c.Get(req))
	assert.Nil(t, c.GetFeatures(req))
}
