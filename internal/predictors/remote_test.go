package predictors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteScorerUnconfiguredShortCircuits(t *testing.T) {
	assert.Nil(t, NewRemoteScorer("", "").Probability(context.Background(), "interview", neutralVector()))
	assert.Nil(t, NewRemoteScorer("http://host", "").Probability(context.Background(), "interview", neutralVector()))
	assert.False(t, NewRemoteScorer("", "key").Configured())
}

func TestRemoteScorerProbabilitySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict/interview", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"probability": 0.42}`))
	}))
	defer srv.Close()

	s := NewRemoteScorer(srv.URL, "test-key")
	p := s.Probability(context.Background(), "interview", neutralVector())

	require.NotNil(t, p)
	assert.InDelta(t, 0.42, *p, 1e-9)
}

func TestRemoteScorerClampsOutOfRangeProbability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"probability": 1.7}`))
	}))
	defer srv.Close()

	p := NewRemoteScorer(srv.URL, "k").Probability(context.Background(), "offer", neutralVector())

	require.NotNil(t, p)
	assert.Equal(t, 1.0, *p)
}

func TestRemoteScorerNon2xxFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Nil(t, NewRemoteScorer(srv.URL, "k").Probability(context.Background(), "interview", neutralVector()))
}

func TestRemoteScorerMalformedResponseFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	assert.Nil(t, NewRemoteScorer(srv.URL, "k").Probability(context.Background(), "interview", neutralVector()))
}

func TestRemoteScorerMissingFieldFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"score": 0.9}`))
	}))
	defer srv.Close()

	assert.Nil(t, NewRemoteScorer(srv.URL, "k").Probability(context.Background(), "interview", neutralVector()))
}

func TestRemoteScorerCanceledContextFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"probability": 0.5}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, NewRemoteScorer(srv.URL, "k").Probability(ctx, "interview", neutralVector()))
}

func TestRemoteScorerSalaryRejectsNonPositiveMedian(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"salary": {"min": 1, "median": 0, "max": 2}}`))
	}))
	defer srv.Close()

	assert.Nil(t, NewRemoteScorer(srv.URL, "k").Salary(context.Background(), neutralVector()))
}

func TestRemoteScorerTimelineSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict/time-to-hire", r.URL.Path)
		_, _ = w.Write([]byte(`{"time_to_hire": {"min_days": 10, "median_days": 20, "max_days": 40}}`))
	}))
	defer srv.Close()

	tl := NewRemoteScorer(srv.URL, "k").Timeline(context.Background(), neutralVector())

	require.NotNil(t, tl)
	assert.Equal(t, 20.0, tl.MedianDays)
}

func TestPredictorPrefersRemoteResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"probability": 0.42}`))
	}))
	defer srv.Close()

	p := NewInterviewPredictor(NewRemoteScorer(srv.URL, "k"))

	r, err := p.Predict(context.Background(), neutralVector())

	require.NoError(t, err)
	assert.True(t, r.Remote)
	assert.InDelta(t, 0.42, r.Probability, 1e-9)
}

func TestPredictorFallsBackWhenRemoteDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewInterviewPredictor(NewRemoteScorer(srv.URL, "k"))

	r, err := p.Predict(context.Background(), neutralVector())

	require.NoError(t, err)
	assert.False(t, r.Remote)
	assert.InDelta(t, 0.15, r.Probability, 1e-9) // heuristic base rate
}
