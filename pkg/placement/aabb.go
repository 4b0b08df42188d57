package placement

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is a world-space axis-aligned bounding box.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Overlaps reports whether the boxes overlap on all three axes.
// Touching faces count as overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// OverlapVolume estimates how much two boxes interpenetrate: the product
// of per-axis overlap lengths, each clamped to zero. It is a ranking
// heuristic only; the exact shape test decides whether a collision exists.
func (a AABB) OverlapVolume(b AABB) float32 {
	dx := minf(a.Max.X, b.Max.X) - maxf(a.Min.X, b.Min.X)
	dy := minf(a.Max.Y, b.Max.Y) - maxf(a.Min.Y, b.Min.Y)
	dz := minf(a.Max.Z, b.Max.Z) - maxf(a.Min.Z, b.Min.Z)
	if dx < 0 {
		dx = 0
	}
	if dy < 0 {
		dy = 0
	}
	if dz < 0 {
		dz = 0
	}
	return dx * dy * dz
}

// Center returns the midpoint of the box.
func (a AABB) Center() rl.Vector3 {
	return rl.Vector3{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
