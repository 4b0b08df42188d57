package placement

import rl "github.com/gen2brain/raylib-go/raylib"

// Object is the view of a single scene object the placement core needs.
// The scene owns the object; the core only reads it, except for the
// position write a successful resolution performs.
//
// BoundsAt and IntersectsAt take an explicit position so hypothetical
// candidates can be tested without touching the object's real transform.
type Object interface {
	ID() string
	Category() string
	Visible() bool
	Enabled() bool
	Position() rl.Vector3
	SetPosition(pos rl.Vector3)

	// BoundsAt returns the object's world-space extents as if it were
	// centered at pos, with its current rotation and scale.
	BoundsAt(pos rl.Vector3) AABB

	// IntersectsAt is the exact shape-vs-shape test, with the receiver
	// placed at pos and other at its real position.
	IntersectsAt(pos rl.Vector3, other Object) bool
}

// SceneView provides the resolver with access to the host scene graph
// without depending on any concrete engine.
type SceneView interface {
	// ObjectByID returns nil when no object has the given id.
	ObjectByID(id string) Object
	Objects() []Object
}
