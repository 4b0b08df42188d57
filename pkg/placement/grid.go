package placement

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// gridStrategy searches expanding square rings of a horizontal grid.
// Each layer tests the full top and bottom edges left to right, then the
// left and right edges with the corners already covered. Candidates
// farther than MaxSearchDistance from the center are culled.
type gridStrategy struct{}

func (g gridStrategy) search(center rl.Vector3, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool) {
	layers := int(math.Ceil(float64(cfg.MaxSearchDistance / cfg.SearchStepSize)))
	for layer := 1; layer <= layers; layer++ {
		if pos, ok := g.ring(center, layer, cfg, free); ok {
			return snapCandidate(cfg, pos), true
		}
	}
	return rl.Vector3{}, false
}

func (gridStrategy) ring(center rl.Vector3, layer int, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool) {
	step := cfg.SearchStepSize
	try := func(ix, iz int) (rl.Vector3, bool) {
		cand := rl.Vector3{
			X: center.X + float32(ix)*step,
			Y: center.Y,
			Z: center.Z + float32(iz)*step,
		}
		if horizontalDistance(cand, center) > cfg.MaxSearchDistance {
			return rl.Vector3{}, false
		}
		return cand, free(cand)
	}

	// Top and bottom edges, including corners.
	for ix := -layer; ix <= layer; ix++ {
		if pos, ok := try(ix, layer); ok {
			return pos, true
		}
		if pos, ok := try(ix, -layer); ok {
			return pos, true
		}
	}
	// Left and right edges, corners excluded.
	for iz := -layer + 1; iz <= layer-1; iz++ {
		if pos, ok := try(-layer, iz); ok {
			return pos, true
		}
		if pos, ok := try(layer, iz); ok {
			return pos, true
		}
	}
	return rl.Vector3{}, false
}
