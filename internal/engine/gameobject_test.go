package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCategoryFromName(t *testing.T) {
	cases := []struct {
		name     string
		category string
	}{
		{"ground_plane", "ground"},
		{"tree_oak_01", "tree"},
		{"Player", "Player"},
		{"_anonymous", "_anonymous"},
	}
	for _, c := range cases {
		g := NewGameObject(c.name)
		if got := g.Category(); got != c.category {
			t.Errorf("Category(%q) = %q, want %q", c.name, got, c.category)
		}
	}
}

func TestBoundsAtIsPure(t *testing.T) {
	g := NewGameObject("crate_01")
	g.Size = rl.Vector3{X: 2, Y: 2, Z: 2}
	g.Transform.Position = rl.Vector3{X: 5, Y: 0, Z: 5}

	box := g.BoundsAt(rl.Vector3{X: 10, Y: 0, Z: 10})

	if g.Transform.Position.X != 5 || g.Transform.Position.Z != 5 {
		t.Error("BoundsAt must not move the object")
	}
	if box.Min.X != 9 || box.Max.X != 11 {
		t.Errorf("BoundsAt extents wrong: min %v max %v", box.Min, box.Max)
	}
}

func TestBoundsAtAppliesScale(t *testing.T) {
	g := NewGameObject("crate_01")
	g.Size = rl.Vector3{X: 1, Y: 1, Z: 1}
	g.Transform.Scale = rl.Vector3{X: 4, Y: 2, Z: 1}

	box := g.BoundsAt(rl.Vector3{})

	if box.Max.X != 2 || box.Max.Y != 1 || box.Max.Z != 0.5 {
		t.Errorf("Scaled bounds wrong: %v", box.Max)
	}
}

func TestIntersectsAtBoxBox(t *testing.T) {
	a := NewGameObject("crate_a")
	b := NewGameObject("crate_b")
	b.Transform.Position = rl.Vector3{X: 2, Y: 0, Z: 0}

	if a.IntersectsAt(a.Position(), b) {
		t.Error("Unit boxes 2 apart should not intersect")
	}
	if !a.IntersectsAt(rl.Vector3{X: 1.5, Y: 0, Z: 0}, b) {
		t.Error("Box moved next to b should intersect")
	}
}

func TestIntersectsAtSphereSphere(t *testing.T) {
	a := NewSphereObject("ball_a", 1)
	b := NewSphereObject("ball_b", 1)
	b.Transform.Position = rl.Vector3{X: 3, Y: 0, Z: 0}

	if a.IntersectsAt(a.Position(), b) {
		t.Error("Spheres 3 apart with radii 1+1 should not intersect")
	}
	if !a.IntersectsAt(rl.Vector3{X: 1.5, Y: 0, Z: 0}, b) {
		t.Error("Sphere moved within radius sum should intersect")
	}
}

func TestIntersectsAtSphereBox(t *testing.T) {
	ball := NewSphereObject("ball", 1)
	crate := NewGameObject("crate_01")
	crate.Size = rl.Vector3{X: 2, Y: 2, Z: 2}
	crate.Transform.Position = rl.Vector3{X: 3, Y: 0, Z: 0}

	// Closest point on the box is (2,0,0); sphere at origin has radius 1.
	if ball.IntersectsAt(rl.Vector3{}, crate) {
		t.Error("Sphere should clear the box by 1 unit")
	}
	if !ball.IntersectsAt(rl.Vector3{X: 1.5, Y: 0, Z: 0}, crate) {
		t.Error("Sphere at 1.5 should reach the box face at x=2")
	}
	// Symmetric form: box tested against sphere.
	if !crate.IntersectsAt(rl.Vector3{X: 1.5, Y: 0, Z: 0}, ball) {
		t.Error("Box moved onto the sphere should intersect")
	}
}
