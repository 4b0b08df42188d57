package placement

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collision describes one overlapping neighbor found during detection.
type Collision struct {
	ObjectID           string
	ObjectType         string
	CenterDistance     float32
	IntersectionVolume float32
}

// Detection is the result of a collision query. A missing target or an
// empty neighbor set yields the zero value; it is never an error.
type Detection struct {
	HasCollision bool
	CollidingIDs []string
	Collisions   []Collision
}

// detector enumerates eligible neighbors of a target object and confirms
// overlaps with the scene's exact shape test. AABBs come from the shared
// bounds cache; a hypothetical target position is handled purely, so the
// live object is never touched.
type detector struct {
	scene SceneView
	cache *boundsCache
}

// detect checks the target against the scene. When at is non-nil the
// target is evaluated as if centered there; its real transform and cache
// entry stay untouched. Neighbors keep using their cached boxes.
func (d *detector) detect(cfg Config, id string, at *rl.Vector3, excludeIDs []string) Detection {
	target := d.scene.ObjectByID(id)
	if target == nil {
		return Detection{}
	}

	pos := target.Position()
	var targetBox AABB
	if at != nil {
		pos = *at
		targetBox = target.BoundsAt(pos)
	} else {
		targetBox = d.cache.get(target).box
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, ex := range excludeIDs {
		excluded[ex] = true
	}

	var out Detection
	for _, other := range d.scene.Objects() {
		if other.ID() == id || excluded[other.ID()] {
			continue
		}
		if !other.Visible() || !other.Enabled() {
			continue
		}
		if cfg.excludesCategory(other.Category()) {
			continue
		}

		otherBox := d.cache.get(other).box
		if !targetBox.Overlaps(otherBox) {
			continue
		}
		// AABB pre-check passed; the scene's shape test is authoritative.
		if !target.IntersectsAt(pos, other) {
			continue
		}

		out.Collisions = append(out.Collisions, Collision{
			ObjectID:           other.ID(),
			ObjectType:         other.Category(),
			CenterDistance:     rl.Vector3Distance(pos, other.Position()),
			IntersectionVolume: targetBox.OverlapVolume(otherBox),
		})
	}

	// Largest estimated overlap first; ties keep scene order.
	sort.SliceStable(out.Collisions, func(i, j int) bool {
		return out.Collisions[i].IntersectionVolume > out.Collisions[j].IntersectionVolume
	})

	out.HasCollision = len(out.Collisions) > 0
	out.CollidingIDs = make([]string, len(out.Collisions))
	for i, c := range out.Collisions {
		out.CollidingIDs[i] = c.ObjectID
	}
	return out
}
