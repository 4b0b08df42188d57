package placement

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// spiralStrategy walks an expanding square spiral in the horizontal
// plane: one step at a time, rotating 90° counter-clockwise at the end
// of each run, run length growing by one every two turns. Run-length
// growth is arithmetic, not geometric; the candidate count within
// distance D at step S stays under (2·D/S+1)².
//
// When vertical search is enabled the same spiral is retried at vertical
// offsets ±k·VerticalStepSize, alternating above and below. Priority
// "vertical" runs the offset passes before the in-plane pass,
// "horizontal" suppresses them entirely.
type spiralStrategy struct{}

func (s spiralStrategy) search(center rl.Vector3, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool) {
	vertical := cfg.SearchVertical && cfg.ResolutionPriority != PriorityHorizontal

	if vertical && cfg.ResolutionPriority == PriorityVertical {
		if pos, ok := s.offsetPasses(center, cfg, free); ok {
			return pos, true
		}
	}
	if pos, ok := s.plane(center, 0, cfg, free); ok {
		return snapCandidate(cfg, pos), true
	}
	if vertical && cfg.ResolutionPriority != PriorityVertical {
		return s.offsetPasses(center, cfg, free)
	}
	return rl.Vector3{}, false
}

// offsetPasses runs the horizontal spiral at increasing vertical
// offsets, above then below at each magnitude.
func (s spiralStrategy) offsetPasses(center rl.Vector3, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool) {
	for k := 1; float32(k)*cfg.VerticalStepSize <= cfg.MaxSearchDistance; k++ {
		off := float32(k) * cfg.VerticalStepSize
		if pos, ok := s.plane(center, off, cfg, free); ok {
			return snapCandidate(cfg, pos), true
		}
		if pos, ok := s.plane(center, -off, cfg, free); ok {
			return snapCandidate(cfg, pos), true
		}
	}
	return rl.Vector3{}, false
}

// plane traces the spiral at a fixed vertical offset. Candidates beyond
// MaxSearchDistance in the plane are skipped; the walk ends once the
// spiral leaves the reachable square entirely.
func (s spiralStrategy) plane(center rl.Vector3, yOffset float32, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool) {
	step := cfg.SearchStepSize
	maxRing := int(math.Ceil(float64(cfg.MaxSearchDistance / step)))
	maxSteps := (2*maxRing + 1) * (2*maxRing + 1)

	x, z := 0, 0
	dx, dz := 1, 0
	runLen, runDone, turns := 1, 0, 0

	for i := 0; i < maxSteps; i++ {
		x += dx
		z += dz
		runDone++
		if runDone == runLen {
			runDone = 0
			dx, dz = -dz, dx
			turns++
			if turns%2 == 0 {
				runLen++
			}
		}

		if x < -maxRing || x > maxRing || z < -maxRing || z > maxRing {
			break
		}
		cand := rl.Vector3{
			X: center.X + float32(x)*step,
			Y: center.Y + yOffset,
			Z: center.Z + float32(z)*step,
		}
		if horizontalDistance(cand, center) > cfg.MaxSearchDistance {
			continue
		}
		if free(cand) {
			return cand, true
		}
	}
	return rl.Vector3{}, false
}
