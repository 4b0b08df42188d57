package placement

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: rl.Vector3{X: minX, Y: minY, Z: minZ},
		Max: rl.Vector3{X: maxX, Y: maxY, Z: maxZ},
	}
}

func TestAABBOverlaps(t *testing.T) {
	cases := []struct {
		name    string
		a, b    AABB
		overlap bool
	}{
		{"identical", box(0, 0, 0, 1, 1, 1), box(0, 0, 0, 1, 1, 1), true},
		{"partial", box(0, 0, 0, 2, 2, 2), box(1, 1, 1, 3, 3, 3), true},
		{"touching faces", box(0, 0, 0, 1, 1, 1), box(1, 0, 0, 2, 1, 1), true},
		{"separated on x", box(0, 0, 0, 1, 1, 1), box(2, 0, 0, 3, 1, 1), false},
		{"separated on y", box(0, 0, 0, 1, 1, 1), box(0, 2, 0, 1, 3, 1), false},
		{"separated on z", box(0, 0, 0, 1, 1, 1), box(0, 0, 2, 1, 1, 3), false},
		{"contained", box(0, 0, 0, 4, 4, 4), box(1, 1, 1, 2, 2, 2), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlap, c.a.Overlaps(c.b))
			// Symmetry
			assert.Equal(t, c.overlap, c.b.Overlaps(c.a))
		})
	}
}

func TestOverlapVolumeZeroWhenSeparated(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	cases := []AABB{
		box(2, 0, 0, 3, 1, 1),
		box(0, 5, 0, 1, 6, 1),
		box(-4, -4, -4, -3, -3, -3),
	}
	for _, b := range cases {
		assert.False(t, a.Overlaps(b))
		assert.Zero(t, a.OverlapVolume(b))
	}
}

func TestOverlapVolumePositive(t *testing.T) {
	a := box(0, 0, 0, 2, 2, 2)
	b := box(1, 1, 1, 3, 3, 3)
	assert.InDelta(t, 1.0, a.OverlapVolume(b), 1e-6)
	assert.InDelta(t, 1.0, b.OverlapVolume(a), 1e-6)

	// Touching boxes overlap with zero volume.
	c := box(2, 0, 0, 4, 2, 2)
	assert.True(t, a.Overlaps(c))
	assert.Zero(t, a.OverlapVolume(c))
}

func TestNewAABBFromCenter(t *testing.T) {
	b := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})
	assert.Equal(t, box(0, 0, 0, 2, 4, 6), b)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, b.Center())
}
