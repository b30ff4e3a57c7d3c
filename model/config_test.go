package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAnalysisConfig(t *testing.T) {
	config := DefaultAnalysisConfig()

	assert.Equal(t, 5, config.TopK, "Default TopK should be 5")
	assert.Equal(t, 0.85, config.Damping, "Default Damping should be 0.85")
	assert.Equal(t, 100, config.MaxIterations, "Default MaxIterations should be 100")
	assert.Equal(t, 1e-6, config.Tolerance, "Default Tolerance should be 1e-6")
	assert.Equal(t, 100, config.MaxClusterIterations, "Default MaxClusterIterations should be 100")
}

func TestDefaultMapConfig(t *testing.T) {
	t.Run("Returns correct default values", func(t *testing.T) {
		config := DefaultMapConfig()

		assert.Equal(t, 1200.0, config.Width)
		assert.Equal(t, 800.0, config.Height)
		assert.Equal(t, 2, config.MaxDepth, "Default MaxDepth should be 2")
		assert.Nil(t, config.VisibleTypes, "Default VisibleTypes should be nil (all types)")
		assert.Equal(t, 120, config.RelaxIterations)
	})

	t.Run("Radii and canvas are consistent", func(t *testing.T) {
		config := DefaultMapConfig()

		assert.Less(t, config.MinRadiusFraction, config.MaxRadiusFraction, "Expected inner rings inside outer rings")
		assert.LessOrEqual(t, config.MaxRadiusFraction, 1.0, "Expected outer ring inside the canvas")
		assert.Less(t, 2*config.Margin, config.Height, "Expected margins to leave room on the canvas")
		assert.Greater(t, config.Damping, 0.0)
		assert.Less(t, config.Damping, 1.0)
	})

	t.Run("Returns a fresh copy", func(t *testing.T) {
		config := DefaultMapConfig()
		config.VisibleTypes = append(config.VisibleTypes, ConnectionTypeCritiqued)

		assert.Nil(t, DefaultMapConfig().VisibleTypes)
	})
}
