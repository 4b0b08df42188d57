package placement

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// radialStrategy tests 8 equally spaced points on rings of increasing
// radius. With vertical search enabled, each ring point is also probed
// one VerticalStepSize above and below before the next angle.
type radialStrategy struct{}

const radialPoints = 8

func (radialStrategy) search(center rl.Vector3, cfg Config, free func(rl.Vector3) bool) (rl.Vector3, bool) {
	rings := int(cfg.MaxSearchDistance / cfg.SearchStepSize)
	for k := 1; k <= rings; k++ {
		radius := float32(k) * cfg.SearchStepSize
		for i := 0; i < radialPoints; i++ {
			angle := float64(i) / radialPoints * 2 * math.Pi
			cand := rl.Vector3{
				X: center.X + radius*float32(math.Cos(angle)),
				Y: center.Y,
				Z: center.Z + radius*float32(math.Sin(angle)),
			}
			if free(cand) {
				return snapCandidate(cfg, cand), true
			}
			if cfg.SearchVertical {
				up := cand
				up.Y += cfg.VerticalStepSize
				if free(up) {
					return snapCandidate(cfg, up), true
				}
				down := cand
				down.Y -= cfg.VerticalStepSize
				if free(down) {
					return snapCandidate(cfg, down), true
				}
			}
		}
	}
	return rl.Vector3{}, false
}
