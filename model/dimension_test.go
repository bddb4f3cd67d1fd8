package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionValid(t *testing.T) {
	supported := []Dimension{
		DimensionService,
		DimensionUsageType,
		DimensionRegion,
		DimensionLinkedAccount,
		DimensionPurchaseType,
		DimensionOperatingSystem,
		DimensionInstanceType,
	}
	for _, d := range supported {
		assert.True(t, d.Valid(), "dimension %q", d)
	}

	assert.False(t, Dimension("AVAILABILITY_ZONE").Valid())
	assert.False(t, Dimension("").Valid())
	assert.False(t, Dimension("service").Valid())
}

func TestResolutionResultAutoApply(t *testing.T) {
	result := ResolutionResult{Confidence: 0.85}

	assert.True(t, result.AutoApply(0.8))
	assert.False(t, result.AutoApply(0.9))
}
