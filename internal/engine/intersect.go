package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneplace/pkg/placement"
)

// IntersectsAt is the exact shape-vs-shape test with the receiver placed
// at pos and other at its real position. Box/box reduces to the AABB
// test (exact for axis-aligned boxes); sphere pairs and sphere/box use
// distance and closest-point tests.
func (g *GameObject) IntersectsAt(pos rl.Vector3, other placement.Object) bool {
	o, ok := other.(*GameObject)
	if !ok {
		// Foreign object: fall back to box extents.
		return g.BoundsAt(pos).Overlaps(other.BoundsAt(other.Position()))
	}

	switch {
	case g.Shape == ShapeSphere && o.Shape == ShapeSphere:
		minDist := g.worldRadius() + o.worldRadius()
		return rl.Vector3Distance(pos, o.Position()) <= minDist
	case g.Shape == ShapeSphere:
		return sphereBoxIntersect(pos, g.worldRadius(), o.BoundsAt(o.Position()))
	case o.Shape == ShapeSphere:
		return sphereBoxIntersect(o.Position(), o.worldRadius(), g.BoundsAt(pos))
	default:
		return g.BoundsAt(pos).Overlaps(o.BoundsAt(o.Position()))
	}
}

// sphereBoxIntersect tests a sphere against a box via the closest point
// on the box to the sphere center.
func sphereBoxIntersect(center rl.Vector3, radius float32, box placement.AABB) bool {
	closest := rl.Vector3{
		X: clamp(center.X, box.Min.X, box.Max.X),
		Y: clamp(center.Y, box.Min.Y, box.Max.Y),
		Z: clamp(center.Z, box.Min.Z, box.Max.Z),
	}
	return rl.Vector3Distance(center, closest) <= radius
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
