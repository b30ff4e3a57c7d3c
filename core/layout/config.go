package layout

import "github.com/siherrmann/thinkermap/model"

// withDefaults returns a copy of config where unusable values are replaced by
// the defaults. A nil config yields the default configuration.
func withDefaults(config *model.MapConfig) model.MapConfig {
	def := model.DefaultMapConfig()
	if config == nil {
		return def
	}

	c := *config
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Margin < 0 {
		c.Margin = def.Margin
	}
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
	if c.MinRadiusFraction <= 0 {
		c.MinRadiusFraction = def.MinRadiusFraction
	}
	if c.MaxRadiusFraction <= 0 {
		c.MaxRadiusFraction = def.MaxRadiusFraction
	}
	if c.MinRadiusFraction > c.MaxRadiusFraction {
		c.MinRadiusFraction = c.MaxRadiusFraction
	}
	if c.JitterFraction < 0 {
		c.JitterFraction = def.JitterFraction
	}
	if c.RelaxIterations < 0 {
		c.RelaxIterations = 0
	}
	if c.RepulsionThreshold <= 0 {
		c.RepulsionThreshold = def.RepulsionThreshold
	}
	if c.RepulsionStrength < 0 {
		c.RepulsionStrength = def.RepulsionStrength
	}
	if c.BoundaryStrength < 0 {
		c.BoundaryStrength = def.BoundaryStrength
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Damping = def.Damping
	}
	if c.MaxStep <= 0 {
		c.MaxStep = def.MaxStep
	}
	if c.EdgeSpacing <= 0 {
		c.EdgeSpacing = def.EdgeSpacing
	}
	if c.HitTolerance < 0 {
		c.HitTolerance = def.HitTolerance
	}
	return c
}
