package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUsageRecord_Valid(t *testing.T) {
	rec, err := parseUsageRecord("job-1", "2026-08-20T09:00:00Z", "2026-08-22T14:30:00Z", "Referral", true, 12)
	require.NoError(t, err)

	assert.Equal(t, "job-1", rec.JobID)
	assert.Equal(t, time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC), rec.PostedAt)
	assert.Equal(t, time.Date(2026, 8, 22, 14, 30, 0, 0, time.UTC), rec.AppliedAt)
	assert.Equal(t, "referral", rec.Method)
	assert.True(t, rec.CVOptimized)
	assert.Equal(t, 12, rec.Sessions)
}

func TestParseUsageRecord_AppliedAtDefaultsToNow(t *testing.T) {
	rec, err := parseUsageRecord("job-1", "2026-08-20T09:00:00Z", "", "platform", false, 0)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), rec.AppliedAt, time.Minute)
}

func TestParseUsageRecord_RejectsBadTimestamps(t *testing.T) {
	_, err := parseUsageRecord("job-1", "August 20", "", "platform", false, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "posted-at")

	_, err = parseUsageRecord("job-1", "2026-08-20T09:00:00Z", "not a time", "platform", false, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "applied-at")
}

func TestParseUsageRecord_RejectsApplicationBeforePosting(t *testing.T) {
	_, err := parseUsageRecord("job-1", "2026-08-20T09:00:00Z", "2026-08-19T09:00:00Z", "platform", false, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "precedes")
}

func TestParseUsageRecord_RejectsUnknownMethod(t *testing.T) {
	_, err := parseUsageRecord("job-1", "2026-08-20T09:00:00Z", "", "carrier-pigeon", false, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestParseUsageRecord_RejectsNegativeSessions(t *testing.T) {
	_, err := parseUsageRecord("job-1", "2026-08-20T09:00:00Z", "", "email", false, -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sessions")
}
