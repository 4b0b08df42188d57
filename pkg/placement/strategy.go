package placement

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// strategy produces candidate positions outward from center and returns
// the first one free reports as collision-free. Every strategy is a
// bounded loop: the candidate count is derived from
// MaxSearchDistance/SearchStepSize, so a search always terminates.
type strategy interface {
	search(center rl.Vector3, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool)
}

// newStrategy maps the configured pattern to its implementation. The
// pattern set is closed; sanitize guarantees cfg holds a known value.
func newStrategy(pattern SearchPattern) strategy {
	switch pattern {
	case PatternRadial:
		return radialStrategy{}
	case PatternGrid:
		return gridStrategy{}
	default:
		return spiralStrategy{}
	}
}

// snapCandidate rounds each coordinate to the nearest multiple of
// GridSnapUnit when snapping is enabled.
func snapCandidate(cfg Config, pos rl.Vector3) rl.Vector3 {
	if !cfg.RespectGridSnap {
		return pos
	}
	return rl.Vector3{
		X: snapf(pos.X),
		Y: snapf(pos.Y),
		Z: snapf(pos.Z),
	}
}

func snapf(v float32) float32 {
	return float32(math.Round(float64(v)/GridSnapUnit)) * GridSnapUnit
}

// horizontalDistance is the XZ-plane distance between two points.
func horizontalDistance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}
