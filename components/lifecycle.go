package components

// Lifetime counts down an entity's remaining time to live, in seconds.
// The countdown saturates at zero; expiry marks the entity for removal.
// Present only on transient entities (enemies, bullets, mirrors).
type Lifetime struct {
	Remaining float32
}

// AutoDespawn marks entities that are destroyed once their collider is
// fully outside the play field, independent of any Lifetime.
type AutoDespawn struct{}

// Timer is a repeating countdown used by spawners.
type Timer struct {
	Elapsed  float32
	Interval float32
}

// NewTimer returns a repeating timer with the given interval in seconds.
func NewTimer(interval float32) Timer {
	return Timer{Interval: interval}
}

// Tick advances the timer by dt and reports whether an interval completed.
// Overshoot carries into the next interval so a long step doesn't drift
// the spawn cadence.
func (t *Timer) Tick(dt float32) bool {
	t.Elapsed += dt
	if t.Elapsed >= t.Interval {
		t.Elapsed -= t.Interval
		return true
	}
	return false
}
