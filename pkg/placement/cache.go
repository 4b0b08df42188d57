package placement

import "time"

// boundsTTL is how long a cached box stays fresh before the next lookup
// recomputes it from the live object.
const boundsTTL = 100 * time.Millisecond

type cacheEntry struct {
	box       AABB
	updatedAt time.Time
	valid     bool
}

// boundsCache keeps one world-space AABB per object id so repeated
// detection queries against an unmoved scene skip bounds recomputation.
// Entries are filled lazily and only removed by Clear. Single caller at
// a time assumed; there is no locking.
type boundsCache struct {
	entries map[string]*cacheEntry
	now     func() time.Time
}

func newBoundsCache() *boundsCache {
	return &boundsCache{
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

// get returns the cached box for obj, recomputing it when the entry is
// missing, invalidated, or older than boundsTTL.
func (c *boundsCache) get(obj Object) *cacheEntry {
	id := obj.ID()
	e := c.entries[id]
	if e != nil && e.valid && c.now().Sub(e.updatedAt) < boundsTTL {
		return e
	}
	if e == nil {
		e = &cacheEntry{}
		c.entries[id] = e
	}
	e.box = obj.BoundsAt(obj.Position())
	e.updatedAt = c.now()
	e.valid = true
	return e
}

// invalidate marks an entry stale without removing it; the next get
// forces a recompute. Unknown ids are ignored.
func (c *boundsCache) invalidate(id string) {
	if e, ok := c.entries[id]; ok {
		e.valid = false
	}
}

func (c *boundsCache) clear() {
	c.entries = make(map[string]*cacheEntry)
}
