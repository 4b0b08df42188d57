package placement

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Resolution is the outcome of a resolve call. Resolved is false when
// resolution is disabled, the object is missing, or the search ran out
// of radius; none of those are errors.
type Resolution struct {
	Resolved         bool
	OriginalPosition rl.Vector3
	NewPosition      rl.Vector3
	DistanceMoved    float32
	ResolutionTime   time.Duration
	PositionsTested  int
}

// Resolver owns the configuration, the bounds cache, and the event and
// metrics state for one scene. Scenes are independent: give each its own
// Resolver. All methods assume a single logical caller at a time.
type Resolver struct {
	scene   SceneView
	cfg     Config
	cache   *boundsCache
	det     *detector
	events  eventLog
	metrics Metrics
	log     *zap.Logger
	now     func() time.Time
}

// Option configures a Resolver at construction.
type Option func(*Resolver)

// WithLogger installs a host logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// WithConfig replaces the default configuration (sanitized on the way in).
func WithConfig(cfg Config) Option {
	return func(r *Resolver) { r.cfg = cfg.sanitize() }
}

func NewResolver(scene SceneView, opts ...Option) *Resolver {
	r := &Resolver{
		scene: scene,
		cfg:   DefaultConfig(),
		cache: newBoundsCache(),
		log:   zap.NewNop(),
		now:   time.Now,
	}
	r.det = &detector{scene: scene, cache: r.cache}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DetectCollisions checks the object against the scene. A non-nil at
// tests a hypothetical position without moving the object.
func (r *Resolver) DetectCollisions(id string, at *rl.Vector3, excludeIDs ...string) Detection {
	return r.detect(r.cfg, id, at, excludeIDs)
}

func (r *Resolver) detect(cfg Config, id string, at *rl.Vector3, excludeIDs []string) Detection {
	start := r.now()
	det := r.det.detect(cfg, id, at, excludeIDs)
	r.metrics.recordDetection(r.now().Sub(start))
	return det
}

// ResolveCollisions places the object at a nearby collision-free
// position when it currently overlaps a neighbor. The object is moved
// only on success; an exhausted search leaves it where it was.
func (r *Resolver) ResolveCollisions(id string, excludeIDs []string, override *Overrides) Resolution {
	cfg := r.cfg
	if override != nil {
		cfg = cfg.apply(*override)
	}

	obj := r.scene.ObjectByID(id)
	if obj == nil {
		return Resolution{}
	}
	orig := obj.Position()
	res := Resolution{OriginalPosition: orig, NewPosition: orig}
	if !cfg.Enabled {
		return res
	}

	start := r.now()
	det := r.detect(cfg, id, nil, excludeIDs)
	res.PositionsTested = 1
	if !det.HasCollision {
		res.Resolved = true
		res.ResolutionTime = r.now().Sub(start)
		return res
	}

	free := func(p rl.Vector3) bool {
		res.PositionsTested++
		return !r.detect(cfg, id, &p, excludeIDs).HasCollision
	}
	if pos, ok := newStrategy(cfg.SearchPattern).search(orig, cfg, free); ok {
		obj.SetPosition(pos)
		r.cache.invalidate(id)
		res.Resolved = true
		res.NewPosition = pos
		res.DistanceMoved = rl.Vector3Distance(orig, pos)
	}
	res.ResolutionTime = r.now().Sub(start)
	r.metrics.recordResolution(res.ResolutionTime)

	r.LogCollisionEvent(CollisionEvent{
		Time:              r.now(),
		ObjectID:          id,
		CollidingIDs:      det.CollidingIDs,
		Resolved:          res.Resolved,
		NewPosition:       res.NewPosition,
		DistanceMoved:     res.DistanceMoved,
		PositionsTested:   res.PositionsTested,
		AnimationDuration: cfg.AnimationDuration,
	})
	r.log.Debug("collision resolution",
		zap.String("object", id),
		zap.Bool("resolved", res.Resolved),
		zap.Int("positions_tested", res.PositionsTested),
		zap.Float32("distance_moved", res.DistanceMoved),
		zap.Duration("took", res.ResolutionTime),
	)
	return res
}

// InvalidateCache marks one object's cached bounds stale.
func (r *Resolver) InvalidateCache(id string) {
	r.cache.invalidate(id)
}

// ClearCache drops all cached bounds.
func (r *Resolver) ClearCache() {
	r.cache.clear()
}

// Config returns a snapshot of the current configuration.
func (r *Resolver) Config() Config {
	cfg := r.cfg
	cfg.ExcludeTypes = append([]string(nil), cfg.ExcludeTypes...)
	return cfg
}

// UpdateConfig merges the overrides into the stored configuration,
// clamping and defaulting invalid values.
func (r *Resolver) UpdateConfig(o Overrides) {
	r.cfg = r.cfg.apply(o)
}

// PerformanceMetrics returns a snapshot of the running counters.
func (r *Resolver) PerformanceMetrics() Metrics {
	return r.metrics
}

// CollisionEvents returns up to limit recent events, oldest first;
// limit <= 0 returns all retained events.
func (r *Resolver) CollisionEvents(limit int) []CollisionEvent {
	return r.events.tail(limit)
}

// LogCollisionEvent appends a diagnostic entry, dropping the oldest past
// the cap.
func (r *Resolver) LogCollisionEvent(ev CollisionEvent) {
	r.events.append(ev)
}
