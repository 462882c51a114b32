package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchScoreZeroLengths(t *testing.T) {
	assert.Equal(t, 0.0, matchScore(0, 0))
}

func TestMatchScoreEqualLengthsIsLowCost(t *testing.T) {
	assert.Less(t, matchScore(30, 30), matchScore(30, 5))
}

func TestPhiIsMonotonicCDF(t *testing.T) {
	assert.InDelta(t, 0.5, phi(0), 1e-6)
	assert.Greater(t, phi(1), phi(0))
	assert.Greater(t, phi(2), phi(1))
	assert.InDelta(t, 1.0, phi(6), 1e-6)
}

func TestPhiOddSymmetry(t *testing.T) {
	assert.InDelta(t, 1.0, phi(1.5)+phi(-1.5), 1e-6)
}
