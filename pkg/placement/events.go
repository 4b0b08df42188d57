package placement

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxEvents caps the diagnostic log; older entries are dropped first.
const maxEvents = 1000

// CollisionEvent is one entry in the diagnostic log. It has no
// behavioral role.
type CollisionEvent struct {
	Time              time.Time
	ObjectID          string
	CollidingIDs      []string
	Resolved          bool
	NewPosition       rl.Vector3
	DistanceMoved     float32
	PositionsTested   int
	AnimationDuration time.Duration
}

// eventLog is a capped append-only ring of recent events.
type eventLog struct {
	entries []CollisionEvent
}

func (l *eventLog) append(ev CollisionEvent) {
	l.entries = append(l.entries, ev)
	if len(l.entries) > maxEvents {
		l.entries = l.entries[len(l.entries)-maxEvents:]
	}
}

// tail returns up to limit most recent events, oldest first. A limit of
// zero or less returns everything retained.
func (l *eventLog) tail(limit int) []CollisionEvent {
	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]CollisionEvent, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}
