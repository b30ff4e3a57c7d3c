package layout

import (
	"math"
	"sort"

	"github.com/siherrmann/thinkermap/model"
)

// minMovement ends the relaxation early once no thinker moves more than this per step.
const minMovement = 0.01

// RelaxPositions pushes overlapping thinkers apart with a pairwise repulsion simulation.
//
// Every iteration each pair closer than the repulsion threshold repels with an
// inverse-square force, thinkers outside the margins are pulled back in, and
// velocities are damped. Forces are computed from the previous positions, so
// the result does not depend on map iteration order. The center never moves.
// The canvas is the one the positions were placed on; a non-positive width or
// height falls back to the config.
//
// Each iteration costs O(n²) in the number of thinkers, which is fine for the
// few hundred thinkers of an ego network but does not scale to the full graph.
func RelaxPositions(positions map[string]model.Position, iterations int, width float64, height float64, config *model.MapConfig) map[string]model.Position {
	c := withDefaults(config)
	if width <= 0 {
		width = c.Width
	}
	if height <= 0 {
		height = c.Height
	}

	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	n := len(ids)
	x := make([]float64, n)
	y := make([]float64, n)
	vx := make([]float64, n)
	vy := make([]float64, n)
	fixed := make([]bool, n)
	for i, id := range ids {
		p := positions[id]
		x[i], y[i] = p.X, p.Y
		fixed[i] = p.IsCenter
	}

	fx := make([]float64, n)
	fy := make([]float64, n)
	threshold2 := c.RepulsionThreshold * c.RepulsionThreshold

	for iter := 0; iter < iterations; iter++ {
		for i := range fx {
			fx[i], fy[i] = 0, 0
		}

		// Pairwise repulsion
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := x[i] - x[j]
				dy := y[i] - y[j]
				d2 := dx*dx + dy*dy
				if d2 >= threshold2 {
					continue
				}

				var ux, uy float64
				if d2 < 1e-9 {
					// Coincident thinkers separate along a stable direction
					angle := hashAngle(ids[i] + "\x00" + ids[j])
					ux, uy = math.Cos(angle), math.Sin(angle)
				} else {
					d := math.Sqrt(d2)
					ux, uy = dx/d, dy/d
				}

				f := c.RepulsionStrength / math.Max(d2, 1)
				fx[i] += f * ux
				fy[i] += f * uy
				fx[j] -= f * ux
				fy[j] -= f * uy
			}
		}

		// Boundary correction and integration
		maxMove := 0.0
		for i := 0; i < n; i++ {
			if fixed[i] {
				continue
			}

			fx[i] += boundaryForce(x[i], c.Margin, width-c.Margin, c.BoundaryStrength)
			fy[i] += boundaryForce(y[i], c.Margin, height-c.Margin, c.BoundaryStrength)

			vx[i] = (vx[i] + fx[i]) * c.Damping
			vy[i] = (vy[i] + fy[i]) * c.Damping

			speed := math.Hypot(vx[i], vy[i])
			if speed > c.MaxStep {
				vx[i] *= c.MaxStep / speed
				vy[i] *= c.MaxStep / speed
				speed = c.MaxStep
			}

			x[i] += vx[i]
			y[i] += vy[i]
			maxMove = math.Max(maxMove, speed)
		}

		if maxMove < minMovement {
			break
		}
	}

	relaxed := make(map[string]model.Position, n)
	for i, id := range ids {
		p := positions[id]
		if !fixed[i] {
			p.X = clamp(x[i], c.Margin, width-c.Margin)
			p.Y = clamp(y[i], c.Margin, height-c.Margin)
		}
		relaxed[id] = p
	}

	return relaxed
}

// boundaryForce pulls v back into [low, high]
func boundaryForce(v float64, low float64, high float64, strength float64) float64 {
	if v < low {
		return (low - v) * strength
	}
	if v > high {
		return -(v - high) * strength
	}
	return 0
}
