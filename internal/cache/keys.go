// Package cache provides the two-tier, TTL-bounded prediction and feature
// cache keyed by content-derived fingerprints.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jonathan/success-predictor/internal/types"
)

// signatureHashLen is the number of hex characters kept from the CV signature
// hash. Collisions across distinct CVs are acceptable: cache correctness is
// best-effort, not cryptographic.
const signatureHashLen = 12

// CVSignature builds a low-cardinality, order-sensitive summary of the salient
// CV content. Changing any of experience count, skills, education count, or
// the leading summary text changes the signature.
func CVSignature(cv *types.CV) string {
	if cv == nil {
		return "nocv"
	}

	summary := cv.Summary
	if len(summary) > 100 {
		summary = summary[:100]
	}

	return fmt.Sprintf("%d_%s_%d_%s",
		len(cv.Experience),
		strings.Join(cv.Skills, ","),
		len(cv.Education),
		summary,
	)
}

// hashSignature reduces a CV signature to a short stable fingerprint.
func hashSignature(signature string) string {
	sum := sha256.Sum256([]byte(signature))
	return hex.EncodeToString(sum[:])[:signatureHashLen]
}

// PredictionKey derives the cache key for a full prediction. Predictions are
// user-specific, so the key includes the user ID and target role.
func PredictionKey(req *types.PredictionRequest) string {
	role := req.TargetRole
	if role == "" {
		role = "default"
	}
	return fmt.Sprintf("pred_%s_%s_%s_%s", req.UserID, req.JobID, hashSignature(CVSignature(req.CV)), role)
}

// FeatureKey derives the cache key for an extracted feature vector. Features
// are more reusable across requests for the same job than predictions are, so
// the key omits the user ID and includes the industry instead.
func FeatureKey(req *types.PredictionRequest) string {
	industry := req.Industry
	if industry == "" {
		industry = "default"
	}
	return fmt.Sprintf("feat_%s_%s_%s", req.JobID, hashSignature(CVSignature(req.CV)), industry)
}
