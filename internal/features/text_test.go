package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/success-predictor/internal/types"
)

func TestDegreeRankExactNames(t *testing.T) {
	assert.Equal(t, 1, DegreeRank("Associate"))
	assert.Equal(t, 2, DegreeRank("BSc"))
	assert.Equal(t, 3, DegreeRank("Masters"))
	assert.Equal(t, 4, DegreeRank("PhD"))
}

func TestDegreeRankLooseMatch(t *testing.T) {
	assert.Equal(t, 2, DegreeRank("Bachelor of Science in Computer Science"))
	assert.Equal(t, 4, DegreeRank("Doctorate in Economics"))
}

func TestDegreeRankPrefersHighestContainedName(t *testing.T) {
	// "MBA" contains both "mba" (rank 3) and "ba" (rank 2); the higher rank wins
	// regardless of map iteration order.
	assert.Equal(t, 3, DegreeRank("MBA, Harvard Business School"))
	assert.Equal(t, 3, DegreeRank("mba"))
}

func TestDegreeRankUnknown(t *testing.T) {
	assert.Equal(t, 0, DegreeRank("Certificate of Completion"))
	assert.Equal(t, 0, DegreeRank(""))
}

func TestHighestDegreeRankPicksBest(t *testing.T) {
	cv := &types.CV{Education: []types.EducationEntry{
		{Degree: "BSc Computer Science"},
		{Degree: "MSc Distributed Systems"},
	}}

	assert.Equal(t, 3, HighestDegreeRank(cv))
}
