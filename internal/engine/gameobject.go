package engine

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"sceneplace/pkg/placement"
)

// Shape is the collision shape of a GameObject. Boxes are axis-aligned;
// editor placement does not rotate collision volumes.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// GameObject is a placeable scene object. The first segment of the name
// before '_' is its category ("ground_plane" -> "ground").
type GameObject struct {
	UID       string
	Name      string
	Transform Transform
	Active    bool
	Hidden    bool
	Shape     Shape
	Size      rl.Vector3 // full box extents, local units
	Radius    float32    // sphere radius, local units
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    uuid.NewString(),
		Name:   name,
		Active: true,
		Shape:  ShapeBox,
		Size:   rl.Vector3{X: 1, Y: 1, Z: 1},
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
	}
}

// NewSphereObject creates a sphere-shaped object.
func NewSphereObject(name string, radius float32) *GameObject {
	g := NewGameObject(name)
	g.Shape = ShapeSphere
	g.Radius = radius
	return g
}

func (g *GameObject) ID() string { return g.UID }

func (g *GameObject) Category() string {
	if i := strings.Index(g.Name, "_"); i > 0 {
		return g.Name[:i]
	}
	return g.Name
}

func (g *GameObject) Visible() bool { return !g.Hidden }
func (g *GameObject) Enabled() bool { return g.Active }

func (g *GameObject) Position() rl.Vector3 { return g.Transform.Position }

func (g *GameObject) SetPosition(pos rl.Vector3) { g.Transform.Position = pos }

// worldSize returns the shape's full world-space extents.
func (g *GameObject) worldSize() rl.Vector3 {
	s := g.Transform.Scale
	if g.Shape == ShapeSphere {
		d := g.Radius * 2
		return rl.Vector3{X: d * s.X, Y: d * s.Y, Z: d * s.Z}
	}
	return rl.Vector3{X: g.Size.X * s.X, Y: g.Size.Y * s.Y, Z: g.Size.Z * s.Z}
}

// BoundsAt returns world-space extents as if the object were centered at
// pos. Pure: never touches the live transform.
func (g *GameObject) BoundsAt(pos rl.Vector3) placement.AABB {
	return placement.NewAABBFromCenter(pos, g.worldSize())
}

// worldRadius is the sphere radius under the largest scale axis.
func (g *GameObject) worldRadius() float32 {
	s := g.Transform.Scale
	m := s.X
	if s.Y > m {
		m = s.Y
	}
	if s.Z > m {
		m = s.Z
	}
	return g.Radius * m
}

var _ placement.Object = (*GameObject)(nil)
